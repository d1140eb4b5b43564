package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewPlaceholderPassword generates a random password for phrase-only recovery,
// where the caller defers choosing a real one. It is hashed like any other
// password and shown to nobody.
func NewPlaceholderPassword(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32 // 256 bits by default
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
