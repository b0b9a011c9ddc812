package walks

// Status es el ciclo de vida de un walk.
// @Enum pending, confirmed, completed
type Status string

const (
	// Creado por un owner, esperando confirmación del walker.
	StatusPending Status = "pending"
	// Confirmado por (o creado directamente por) un walker.
	StatusConfirmed Status = "confirmed"
	// El walker registró el journal y cerró el walk.
	StatusCompleted Status = "completed"
)

// No hay tabla de transiciones: cualquier walker puede setear cualquier
// status (actores de confianza). Lo único que validamos es que el valor
// sea uno de los tres conocidos.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}
