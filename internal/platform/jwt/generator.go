// Package jwtmw provides JWT token generation and the Gin auth middleware.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// tokenIssuer identifies tokens minted by this service.
const tokenIssuer = "coinnexus"

// Generator mints the access tokens handed out at login.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// hs256Generator signs access tokens with a shared HMAC secret. The
// middleware in this package verifies them, so algorithm and claim
// layout only need to agree within this file pair.
type hs256Generator struct {
	key []byte
	ttl time.Duration
}

// NewGenerator creates a token generator from the signing secret and
// the lifetime each issued token gets.
func NewGenerator(secret string, ttl time.Duration) Generator {
	return &hs256Generator{
		key: []byte(secret),
		ttl: ttl,
	}
}

// GenerateToken signs an access token for the user. The subject is the
// numeric user ID (the middleware reads it back as such) and the email
// rides along so clients can display the account without a second call.
func (g *hs256Generator) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iss":   tokenIssuer,
		"iat":   now.Unix(),
		"exp":   now.Add(g.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
