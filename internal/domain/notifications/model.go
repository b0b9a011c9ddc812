package notifications

import "time"

// Type clasifica la notificación para la UI.
// @Enum success, error, info, warning
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
)

func ValidType(t Type) bool {
	switch t {
	case TypeSuccess, TypeError, TypeInfo, TypeWarning:
		return true
	}
	return false
}

// Notification pertenece a exactamente un usuario; nunca hay
// visibilidad cruzada entre inboxes.
type Notification struct {
	ID     string
	UserID string

	Type    Type
	Title   string
	Message string

	Timestamp time.Time
	Read      bool
}
