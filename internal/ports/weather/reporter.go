package weather

import "context"

// Reporter devuelve una descripción corta del clima actual para una
// ubicación ("sunny", "light rain"). Se usa para completar el journal
// de un walk al marcarlo como completed; es opcional y best-effort.
type Reporter interface {
	Current(ctx context.Context, location string) (string, error)
}
