package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultIssuer     = "agrostore"
	defaultSessionTTL = 24 * time.Hour
	secretKeySize     = 32
)

// Service issues and verifies admin session tokens.
type Service struct {
	config Config

	logger *zap.Logger
}

// NewService creates a new Service. Without a configured secret a random
// one is generated, which invalidates sessions on every restart.
func NewService(config Config, logger *zap.Logger) (*Service, error) {
	if config.Issuer == "" {
		config.Issuer = defaultIssuer
	}
	if config.SessionTTL <= 0 {
		config.SessionTTL = defaultSessionTTL
	}
	if len(config.SecretKey) == 0 {
		config.SecretKey = make([]byte, secretKeySize)
		if _, err := rand.Read(config.SecretKey); err != nil {
			return nil, fmt.Errorf("failed to generate secret key: %w", err)
		}
		logger.Warn("no session secret configured, using a random one")
	}
	if config.Username == "" || (config.Password == "" && config.PasswordHash == "") {
		logger.Warn("admin credentials are not configured, login is disabled")
	}

	return &Service{
		config: config,

		logger: logger,
	}, nil
}

// SessionTTL is the fixed lifetime of an issued session.
func (s *Service) SessionTTL() time.Duration {
	return s.config.SessionTTL
}

// CookieSecure reports whether the session cookie is restricted to HTTPS.
func (s *Service) CookieSecure() bool {
	return s.config.CookieSecure
}

// Login checks the static admin credentials and returns a signed session token
func (s *Service) Login(_ context.Context, username, password string) (string, error) {
	if !s.checkCredentials(username, password) {
		s.logger.Warn("failed admin login", zap.String("username", username))
		return "", ErrInvalidCredentials
	}

	claims := NewSessionClaims(username, s.config.Issuer, time.Now(), s.config.SessionTTL)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.SecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}

	s.logger.Info("admin logged in", zap.String("username", username))
	return token, nil
}

// VerifySession implements SessionVerifier.
func (s *Service) VerifySession(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	if _, err := s.ValidateJWT(ctx, token); err != nil {
		s.logger.Debug("session rejected", zap.Error(err))
		return false
	}

	return true
}

// ValidateJWT validates a session token and returns its claims
func (s *Service) ValidateJWT(_ context.Context, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(_ *jwt.Token) (any, error) {
			return s.config.SecretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Role != RoleAdmin {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

func (s *Service) checkCredentials(username, password string) bool {
	if s.config.Username == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.Username)) == 1

	var passOK bool
	switch {
	case s.config.PasswordHash != "":
		passOK = bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(password)) == nil
	case s.config.Password != "":
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.config.Password)) == 1
	}

	return userOK && passOK
}

var _ SessionVerifier = (*Service)(nil)
