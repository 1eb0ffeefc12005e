package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken("secret", 42, 60)
	assert.NoError(t, err)
	assert.NotEmpty(t, tok.Token)

	uid, err := ParseSessionToken("secret", tok.Token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), uid)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("secret", 42, 60)
	assert.NoError(t, err)

	_, err = ParseSessionToken("other-secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenExpired(t *testing.T) {
	// Negative TTL yields an exp in the past; Parse must reject it.
	tok, err := NewSessionToken("secret", 42, -1)
	assert.NoError(t, err)

	_, err = ParseSessionToken("secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenMalformed(t *testing.T) {
	_, err := ParseSessionToken("secret", "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
