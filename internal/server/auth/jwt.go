// Package auth holds the credential primitives of the server: signed,
// time-limited access tokens and one-way password digests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/microposts/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims; the identity lives in Subject.
type Claims struct {
	jwt.RegisteredClaims
}

func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	return token.SignedString(secretKey)
}

// GetSubjectFromToken checks signature, algorithm and expiry and returns the
// subject claim. Every failure wraps common.ErrInvalidToken; expired tokens
// additionally match common.ErrTokenExpired.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}

// TokenService issues and verifies access tokens with a fixed secret and TTL.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenService(secretKey string, ttl time.Duration) *TokenService {
	return &TokenService{secretKey: []byte(secretKey), ttl: ttl}
}

func (s *TokenService) Issue(subject string) (string, error) {
	return GenerateToken(subject, s.secretKey, s.ttl)
}

func (s *TokenService) Verify(token string) (string, error) {
	return GetSubjectFromToken(token, s.secretKey)
}
