package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// PKCEGenerator produces code_verifier/code_challenge pairs (RFC 7636, S256).
type PKCEGenerator struct{}

func NewPKCEGenerator() *PKCEGenerator {
	return &PKCEGenerator{}
}

func (PKCEGenerator) Generate() (codeVerifier, codeChallenge string, err error) {
	verifierBytes := make([]byte, 32)
	if _, err := rand.Read(verifierBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	codeVerifier = base64.RawURLEncoding.EncodeToString(verifierBytes)
	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge = base64.RawURLEncoding.EncodeToString(hash[:])
	return codeVerifier, codeChallenge, nil
}
