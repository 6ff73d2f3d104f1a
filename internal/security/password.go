package security

import (
	crand "crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// GenerateSalt returns a fresh random salt. Each user gets their own salt at
// signup so equal passwords never share a digest.
func GenerateSalt() (string, error) {
	b := make([]byte, saltLength)
	if _, err := crand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashPassword derives an argon2id digest for the (password, salt) pair. The
// same pair always produces the same digest.
func HashPassword(password, salt string) string {
	digest := argon2.IDKey(
		[]byte(password),
		[]byte(salt),
		argonTime,
		argonMemory,
		argonThreads,
		argonKeyLen,
	)
	return hex.EncodeToString(digest)
}

// VerifyPassword recomputes the digest for the candidate password and compares
// it to the stored one in constant time.
func VerifyPassword(password, salt, storedDigest string) bool {
	digest := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}
