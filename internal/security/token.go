package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAccessToken mints the bearer token handed out at sign-in: an HS256
// JWT signed with a per-user key, carrying the user uuid and the session
// validity window. The random jti claim makes every minted token unique, even
// for the same user in the same second. The server never parses the token
// back; it is stored on the session row and only ever used as an opaque
// lookup key.
func GenerateAccessToken(
	signingKey []byte,
	userUUID string,
	issuedAt, expiresAt time.Time,
) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userUUID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}
