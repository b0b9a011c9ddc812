package tokens

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"star-dog-walker/internal/ports/auth"
)

var (
	ErrNoSecret     = errors.New("token secret not configured")
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// DefaultTTL es la expiración estándar de los tokens de sesión.
const DefaultTTL = 24 * time.Hour

// Manager firma y verifica tokens HS256.
// Implementa auth.TokenIssuer y auth.TokenVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var (
	_ auth.TokenIssuer   = (*Manager)(nil)
	_ auth.TokenVerifier = (*Manager)(nil)
)

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue firma un token cuyo subject es el user ID.
// El token no lleva email/rol: el middleware re-resuelve al usuario en cada request.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("user id required")
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) Verify(ctx context.Context, tokenString string) (auth.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			// Solo HMAC; un token RS256 ajeno no debe pasar.
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil || !token.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	rc, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || strings.TrimSpace(rc.Subject) == "" {
		return auth.Claims{}, ErrTokenInvalid
	}

	return auth.Claims{UserID: rc.Subject}, nil
}
