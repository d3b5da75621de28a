package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	ok, err := h.Verify("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	a, err := h.Hash("secret1")
	require.NoError(t, err)
	b, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	_, err := h.Verify("secret1", "not-a-bcrypt-hash")
	assert.Error(t, err)
}

func TestCostIsClamped(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcrypt(-1).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcrypt(99).cost)
	assert.Equal(t, DefaultCost, NewBcrypt(DefaultCost).cost)
}
