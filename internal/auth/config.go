package auth

import "time"

type Config struct {
	// Static admin credentials. PasswordHash, a bcrypt hash, takes
	// precedence over the plain Password when set.
	Username     string
	Password     string
	PasswordHash string

	SecretKey  []byte
	Issuer     string
	SessionTTL time.Duration

	CookieSecure bool
}
