package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	keyLen     = 32
	iterations = 100_000
)

// HashPassword derives a salted PBKDF2-HMAC-SHA256 digest from a plaintext
// password. The digest is "<hex salt>.<hex key>". A fresh random salt is
// generated on every call, so hashing the same password twice yields
// different digests that both verify.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return hex.EncodeToString(salt) + "." + hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the key from the digest's embedded salt and
// compares in constant time. Malformed digests verify as false, never error.
func VerifyPassword(password, digest string) bool {
	saltHex, keyHex, ok := strings.Cut(digest, ".")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) != saltLen {
		return false
	}
	stored, err := hex.DecodeString(keyHex)
	if err != nil || len(stored) != keyLen {
		return false
	}
	derived := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return subtle.ConstantTimeCompare(derived, stored) == 1
}
