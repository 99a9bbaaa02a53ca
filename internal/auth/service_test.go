package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigyat/agrostore/internal/auth"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T, cfg auth.Config) *auth.Service {
	t.Helper()

	svc, err := auth.NewService(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return svc
}

func TestService_LoginAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, auth.Config{Username: "admin", Password: "s3cret", SecretKey: []byte("key")})

	_, err := svc.Login(ctx, "admin", "wrong")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "root", "s3cret")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	token, err := svc.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.True(t, svc.VerifySession(ctx, token))

	claims, err := svc.ValidateJWT(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "agrostore", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	assert.False(t, svc.VerifySession(ctx, ""))
	assert.False(t, svc.VerifySession(ctx, token+"x"))
}

func TestService_PasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newService(t, auth.Config{Username: "admin", Password: "ignored", PasswordHash: string(hash)})

	_, err = svc.Login(context.Background(), "admin", "ignored")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
}

func TestService_LoginDisabledWithoutCredentials(t *testing.T) {
	svc := newService(t, auth.Config{})

	_, err := svc.Login(context.Background(), "", "")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_RejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, auth.Config{Username: "admin", Password: "p", SecretKey: []byte("key"), Issuer: "agrostore"})

	sign := func(claims jwt.Claims, key []byte) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	now := time.Now()
	cases := map[string]string{
		"other key":    sign(auth.NewSessionClaims("admin", "agrostore", now, time.Hour), []byte("other")),
		"other issuer": sign(auth.NewSessionClaims("admin", "someone", now, time.Hour), []byte("key")),
		"expired":      sign(auth.NewSessionClaims("admin", "agrostore", now.Add(-2*time.Hour), time.Hour), []byte("key")),
		"no role": sign(jwt.RegisteredClaims{
			Issuer:    "agrostore",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		}, []byte("key")),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, svc.VerifySession(ctx, token))
		})
	}
}

func TestService_RandomSecretPerInstance(t *testing.T) {
	ctx := context.Background()
	cfg := auth.Config{Username: "admin", Password: "p"}
	first := newService(t, cfg)
	second := newService(t, cfg)

	token, err := first.Login(ctx, "admin", "p")
	require.NoError(t, err)
	assert.True(t, first.VerifySession(ctx, token))
	assert.False(t, second.VerifySession(ctx, token))
}

type staticVerifier bool

func (v staticVerifier) VerifySession(_ context.Context, token string) bool {
	return bool(v) && token == "ok"
}

func TestRequireAdmin(t *testing.T) {
	app := fiber.New()
	app.Post("/guarded", auth.RequireAdmin(staticVerifier(true)), func(c *fiber.Ctx) error {
		return c.SendString("done")
	})

	req := httptest.NewRequest(fiber.MethodPost, "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPost, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "bad"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPost, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "ok"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
