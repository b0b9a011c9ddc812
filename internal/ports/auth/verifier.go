package auth

import "context"

// TokenVerifier verifica un token y devuelve claims o error.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer firma un token para un usuario.
type TokenIssuer interface {
	Issue(ctx context.Context, userID string) (string, error)
}

// IdentityResolver resuelve los claims contra el store de usuarios.
// Si el usuario del token ya no existe, devuelve error.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID string) (Identity, error)
}
