// Package jwt inspects the bearer tokens issued by /auth. Tokens are
// parsed without signature verification; the server remains the only
// authority on their validity.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// Claims are the token claims the server puts into a bearer token.
type Claims struct {
	Username string `json:"username"`
	Realm    string `json:"realm"`
	Role     string `json:"role"`
	AuthType string `json:"authtype"`

	jwt.RegisteredClaims
}

// Decode parses a bearer token without verifying its signature.
func Decode(token string) (*Claims, error) {
	var claims Claims

	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	return &claims, nil
}

// ExpiresIn reports how long the token remains valid. Zero means the
// token carries no expiry.
func (c *Claims) ExpiresIn() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}

	d := time.Until(c.ExpiresAt.Time)

	if d < 0 {
		return 0
	}

	return d
}
