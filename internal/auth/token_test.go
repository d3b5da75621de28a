package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Nanosecond)

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue("user-42")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

func TestTokenTTLDefault(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0)
	assert.Equal(t, DefaultTokenTTL, issuer.ttl)
}
