// SPDX-License-Identifier: MIT

// Package auth issues and checks the bearer tokens that guard the
// server's write endpoints.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/littlebrand/littlebrand/internal/config"
)

// EnvJWTSecret overrides auth.jwt_secret
const EnvJWTSecret = "LB_JWT_SECRET"

// ErrNoSecret is returned when tokens are requested but no secret is configured
var ErrNoSecret = errors.New("no JWT secret configured: set auth.jwt_secret or " + EnvJWTSecret)

// Claims represents JWT claims for an API token
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// getJWTSecret returns the JWT secret from env var or config
func getJWTSecret() string {
	// Environment variable takes precedence
	if secret := os.Getenv(EnvJWTSecret); secret != "" {
		return secret
	}
	return config.GetString("auth.jwt_secret")
}

// Enabled reports whether a secret is configured. Without one the write
// endpoints are open.
func Enabled() bool {
	return getJWTSecret() != ""
}

// GenerateToken creates a token labelled name that expires after
// auth.jwt_expiry_hours
func GenerateToken(name string) (string, error) {
	secret := getJWTSecret()
	if secret == "" {
		return "", ErrNoSecret
	}

	expiryHours := config.GetInt("auth.jwt_expiry_hours")
	if expiryHours == 0 {
		expiryHours = 720 // Default fallback
	}

	return signToken(name, secret, time.Now(), time.Duration(expiryHours)*time.Hour)
}

func signToken(name, secret string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a JWT token
func ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	secret := getJWTSecret()
	if secret == "" {
		return nil, ErrNoSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
