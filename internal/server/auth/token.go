package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DefaultTokenBytes gives 128 bits of entropy (32 hex characters).
const DefaultTokenBytes = 16

// TokenGenerator mints single-use verification token values.
type TokenGenerator interface {
	Generate() (string, error)
}

// RandomTokenGenerator draws size bytes from crypto/rand and hex encodes them.
type RandomTokenGenerator struct {
	size int
}

func NewRandomTokenGenerator(size int) *RandomTokenGenerator {
	if size <= 0 {
		size = DefaultTokenBytes
	}
	return &RandomTokenGenerator{size: size}
}

// readRandom is a test seam for crypto/rand.
var readRandom = rand.Read

func (g *RandomTokenGenerator) Generate() (string, error) {
	b := make([]byte, g.size)
	if _, err := readRandom(b); err != nil {
		return "", fmt.Errorf("token entropy: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashToken returns the hex SHA-256 digest under which a token value is stored.
func HashToken(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
