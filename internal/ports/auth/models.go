package auth

// Claims es el payload mínimo que viaja dentro del token.
// La identidad completa se re-resuelve desde el store en cada request
// (nunca cacheamos campos de perfil dentro del token).
type Claims struct {
	UserID string
}

// Identity es el usuario ya resuelto que acompaña al request.
type Identity struct {
	ID      string
	Email   string
	Name    string
	Role    string
	Phone   string
	Address string
}

// Roles soportados por el marketplace.
const (
	RoleOwner  = "owner"
	RoleWalker = "walker"
)

func (i Identity) IsOwner() bool  { return i.Role == RoleOwner }
func (i Identity) IsWalker() bool { return i.Role == RoleWalker }
