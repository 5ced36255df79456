package security

import (
	"crypto/sha256"
	"encoding/base64"
)

// SHA256Hasher reproduces the digest scheme every stored credential already
// uses: a single unsalted SHA-256 over the password bytes, base64 encoded.
// Deterministic, so verification is recompute-and-compare. Switching schemes
// invalidates all stored hashes; see BcryptHasher for the opt-in alternative.
type SHA256Hasher struct{}

func NewSHA256Hasher() SHA256Hasher { return SHA256Hasher{} }

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(password, digest string) bool {
	computed, err := h.Hash(password)
	if err != nil {
		return false
	}
	return computed == digest
}
