package token

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJwtService(t *testing.T) {
	// Setup
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Error generating random bytes: %v", err)
	}
	secretKey := base64.URLEncoding.EncodeToString(bytes)
	issuer := "vinom-maze-test"

	svc := NewJwtService(secretKey, issuer)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		token, err := svc.Generate("operator", 5*time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Equal(t, "operator", claims["sub"])
		assert.Equal(t, issuer, claims["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate("operator", -time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Reject empty subject", func(t *testing.T) {
		_, err := svc.Generate("", time.Minute)
		assert.ErrorIs(t, err, ErrEmptySubject)
	})

	t.Run("Reject foreign issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "someone-else")
		token, err := other.Generate("operator", time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrIssuerMismatch)
	})

	t.Run("Reject other secret", func(t *testing.T) {
		other := NewJwtService("another-secret", issuer)
		token, err := other.Generate("operator", time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})
}
