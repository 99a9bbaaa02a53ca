package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RoleAdmin is the only role a session can carry.
const RoleAdmin = "admin"

// SessionClaims represents the claims stored in the session cookie
type SessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// NewSessionClaims creates claims valid from issuedAt for ttl
func NewSessionClaims(subject, issuer string, issuedAt time.Time, ttl time.Duration) *SessionClaims {
	return &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			NotBefore: jwt.NewNumericDate(issuedAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ID:        uuid.NewString(),
		},
		Role: RoleAdmin,
	}
}
