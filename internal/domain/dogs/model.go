package dogs

import "time"

// Dog representa el perfil completo de un perro registrado por su owner.
// OwnerID es inmutable: los perros no se transfieren en este diseño.
type Dog struct {
	ID      string
	OwnerID string

	Name  string
	Breed string

	Age    *int
	Weight *float64
	Color  string

	MicrochipNumber string
	VetName         string
	VetPhone        string
	Medications     string
	Allergies       string
	BehaviorNotes   string

	EmergencyContact    string
	FeedingInstructions string

	Photo string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary es la proyección que se embebe en las respuestas de walks.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Photo string `json:"photo"`
}

func (d Dog) Summary() Summary {
	return Summary{
		ID:    d.ID,
		Name:  d.Name,
		Breed: d.Breed,
		Photo: d.Photo,
	}
}
