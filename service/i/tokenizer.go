package i

import (
	"time"
)

// Tokenizer defines methods for generating and decoding access tokens.
type Tokenizer interface {
	// Generate creates a token for subject that expires after ttl.
	Generate(subject string, ttl time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
