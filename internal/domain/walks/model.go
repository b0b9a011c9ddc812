package walks

import "time"

// Walk es una reserva de paseo más su journal.
//
// OwnerID se denormaliza desde el dueño del perro al crear y no se
// re-deriva nunca: los perros no se transfieren en este diseño, así
// que la copia es un invariante fijo, no algo a revalidar.
type Walk struct {
	ID       string
	DogID    string
	WalkerID string
	OwnerID  string

	Date      string // YYYY-MM-DD, opaco para el server
	StartTime string // HH:MM
	EndTime   string
	Duration  int // minutos

	Status Status

	// Journal (lo escribe el walker)
	Route         string
	Weather       string
	Notes         string
	BehaviorNotes string
	Photos        []string // URLs, orden de carga

	// Datos de la reserva (los escribe el owner)
	PickupAddress string
	SpecialNotes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
