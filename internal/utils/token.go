package utils

import "github.com/google/uuid"

// TokenGenerator produces opaque session tokens. The token carries no
// information by itself; it is only a key into the server-side session store.
type TokenGenerator struct {
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// Generate returns a fresh session token. UUIDv7 is preferred for its
// time-ordered layout; on the unlikely generation failure it falls back to
// a random v4.
func (g *TokenGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
