package tokens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueVerify_RoundTrip(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	tok, err := m.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewManager("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewManager("secret-b", time.Hour)
	require.NoError(t, err)

	tok, err := issuer.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_Verify_Expired(t *testing.T) {
	m, err := NewManager("test-secret", time.Minute)
	require.NoError(t, err)

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	tok, err := m.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	// Dentro de la ventana sigue siendo válido.
	m.now = func() time.Time { return issuedAt.Add(30 * time.Second) }
	_, err = m.Verify(context.Background(), tok)
	require.NoError(t, err)

	// Pasado el TTL, rechazado.
	m.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = m.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_Verify_EmptyAndGarbage(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	_, err = m.Verify(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager("   ", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
}
