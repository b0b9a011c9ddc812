package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"star-dog-walker/internal/ports/auth"
)

type ctxKey string

const authKey ctxKey = "auth"

var (
	ErrNoToken      = errors.New("access token required")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrUnknownUser  = errors.New("user not found")
)

// authResult guarda la identidad resuelta o el motivo del fallo.
// El middleware nunca corta el request: los endpoints públicos
// (login, register, /walks/public/{id}) pasan por aquí sin token.
type authResult struct {
	identity auth.Identity
	err      error
}

// AuthContext verifica el Bearer token y re-resuelve la identidad
// completa desde el store en cada request (sin cachear perfil viejo).
func AuthContext(verifier auth.TokenVerifier, resolver auth.IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := authResult{err: ErrNoToken}

			if token := bearerToken(r.Header.Get("Authorization")); token != "" {
				claims, err := verifier.Verify(r.Context(), token)
				if err != nil {
					res = authResult{err: ErrInvalidToken}
				} else if identity, err := resolver.Resolve(r.Context(), claims.UserID); err != nil {
					// Token válido pero el usuario ya no existe.
					res = authResult{err: ErrUnknownUser}
				} else {
					res = authResult{identity: identity}
				}
			}

			ctx := context.WithValue(r.Context(), authKey, res)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity devuelve la identidad del request, o el motivo por el
// que no hay una (ErrNoToken / ErrInvalidToken / ErrUnknownUser).
func GetIdentity(ctx context.Context) (auth.Identity, error) {
	v := ctx.Value(authKey)
	if v == nil {
		return auth.Identity{}, ErrNoToken
	}
	res, ok := v.(authResult)
	if !ok {
		return auth.Identity{}, ErrNoToken
	}
	if res.err != nil {
		return auth.Identity{}, res.err
	}
	return res.identity, nil
}

// RequireIdentity exige identidad y escribe la respuesta de error si falta.
// Contrato con los clientes: sin token 401, token inválido 403,
// usuario del token inexistente 404.
func RequireIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, err := GetIdentity(r.Context())
	if err == nil {
		return identity, true
	}

	switch {
	case errors.Is(err, ErrInvalidToken):
		http.Error(w, "invalid or expired token", http.StatusForbidden)
	case errors.Is(err, ErrUnknownUser):
		http.Error(w, "user not found", http.StatusNotFound)
	default:
		http.Error(w, "access token required", http.StatusUnauthorized)
	}
	return auth.Identity{}, false
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
