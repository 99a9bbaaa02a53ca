package auth

import "context"

// SessionVerifier decides whether a session token grants admin access.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) bool
}
