// Package auth issues and verifies the signed session tokens handed to
// callers on login. A token references an in-memory session by id; verifying
// the signature alone is not enough to act on it.
package auth

import (
	"fmt"
	"time"

	"github.com/avasiljevs/gpavault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the owning username and the standard registered claims.
// The session id travels in the registered ID (jti) claim.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints an HS256-signed token for userID bound to sessionID.
func GenerateToken(userID, sessionID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns the user and session ids.
// Every failure mode (bad signature, expiry, malformed input) comes back as
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (userID, sessionID string, err error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.UserID, claims.ID, nil
}
