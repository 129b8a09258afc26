package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// Tests run with the minimum cost; the production default of 12 is
// checked separately without paying for a slow hash.
func newTestHasher() *PasswordHasher {
	return &PasswordHasher{Cost: bcrypt.MinCost}
}

func TestNewPasswordHasherCost(t *testing.T) {
	assert.Equal(t, 12, NewPasswordHasher().Cost)
}

func TestPasswordRoundTrip(t *testing.T) {
	h := newTestHasher()

	hash, err := h.GenerateFromPassword("Abcdef1!")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)

	assert.True(t, h.VerifyPasswd("Abcdef1!", hash))
	assert.False(t, h.VerifyPasswd("abcdef1!", hash))
	assert.False(t, h.VerifyPasswd("", hash))
}

func TestVerifyPasswdGarbageHash(t *testing.T) {
	h := newTestHasher()
	assert.False(t, h.VerifyPasswd("Abcdef1!", "not-a-hash"))
}

func TestHashesAreSalted(t *testing.T) {
	h := newTestHasher()

	h1, err := h.GenerateFromPassword("Abcdef1!")
	assert.NoError(t, err)
	h2, err := h.GenerateFromPassword("Abcdef1!")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
