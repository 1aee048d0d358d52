package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid. There is no refresh or
// revocation mechanism; rotating the signing secret invalidates everything
// outstanding.
const TokenTTL = 24 * time.Hour

// Claims carries the authenticated subject's email in the standard Subject
// claim.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateJWT issues an HS256 token for the given subject email, expiring
// TokenTTL from now.
func GenerateJWT(email string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	})
	return token.SignedString(secret)
}

// ValidateJWT verifies signature and expiry and returns the claims.
// Malformed, tampered and expired tokens all collapse into ErrInvalidToken;
// callers cannot and should not distinguish them.
func ValidateJWT(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
