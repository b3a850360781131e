package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradegate/marketplace-backend/internal/middleware"
)

func TestRegisterSetsSessionCookie(t *testing.T) {
	env := setupEnv(t)

	resp := env.request(t, fiber.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Buyer One",
		"email":    "buyer@example.com",
		"password": "s3cret-pass",
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	cookie := authCookie(resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.NotEmpty(t, cookie.Value)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "buyer", user["role"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	env := setupEnv(t)
	env.register(t, "First", "dup@example.com", "")

	resp := env.request(t, fiber.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Second",
		"email":    "dup@example.com",
		"password": "other-pass",
	}, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegisterMissingFields(t *testing.T) {
	env := setupEnv(t)

	resp := env.request(t, fiber.MethodPost, "/api/auth/register", map[string]any{
		"email": "incomplete@example.com",
	}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginFailureIsUniform(t *testing.T) {
	env := setupEnv(t)
	env.register(t, "Known", "known@example.com", "")

	wrongPass := env.request(t, fiber.MethodPost, "/api/auth/login", map[string]any{
		"email": "known@example.com", "password": "wrong",
	}, nil)
	unknown := env.request(t, fiber.MethodPost, "/api/auth/login", map[string]any{
		"email": "nobody@example.com", "password": "whatever",
	}, nil)

	assert.Equal(t, fiber.StatusUnauthorized, wrongPass.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, unknown.StatusCode)

	var a, b map[string]any
	decodeBody(t, wrongPass, &a)
	decodeBody(t, unknown, &b)
	assert.Equal(t, a["message"], b["message"])
}

func TestMeReturnsSafeSubset(t *testing.T) {
	env := setupEnv(t)
	cookie, _ := env.register(t, "Buyer One", "me@example.com", "")

	resp := env.request(t, fiber.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user map[string]any
	decodeBody(t, resp, &user)
	assert.Equal(t, "me@example.com", user["email"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestMeWithoutSession(t *testing.T) {
	env := setupEnv(t)

	resp := env.request(t, fiber.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMeWithTamperedToken(t *testing.T) {
	env := setupEnv(t)
	cookie, _ := env.register(t, "Buyer One", "tamper@example.com", "")

	tampered := &http.Cookie{
		Name:  middleware.AuthCookieName,
		Value: cookie.Value[:len(cookie.Value)-2] + "xx",
	}
	resp := env.request(t, fiber.MethodGet, "/api/auth/me", nil, tampered)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMeRejectsUnsignedAlgorithm(t *testing.T) {
	env := setupEnv(t)
	_, body := env.register(t, "Buyer One", "alg@example.com", "")
	user := body["user"].(map[string]any)

	// Claims are well-formed; only the signing method is wrong.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  user["id"],
		"role": "buyer",
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	resp := env.request(t, fiber.MethodGet, "/api/auth/me", nil, &http.Cookie{
		Name:  middleware.AuthCookieName,
		Value: raw,
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutIsIdempotent(t *testing.T) {
	env := setupEnv(t)

	// No session at all still succeeds.
	resp := env.request(t, fiber.MethodPost, "/api/auth/logout", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cleared := false
	for _, c := range resp.Cookies() {
		if c.Name == middleware.AuthCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "auth cookie should be expired on logout")

	// GET variant is served too.
	resp = env.request(t, fiber.MethodGet, "/api/auth/logout", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	env := setupEnv(t)
	cookie, _ := env.register(t, "Buyer One", "profile@example.com", "")

	resp := env.request(t, fiber.MethodPut, "/api/auth/me", map[string]any{
		"company_name": "Acme Trading LLC",
		"country":      "AE",
	}, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user map[string]any
	decodeBody(t, resp, &user)
	assert.Equal(t, "Acme Trading LLC", user["company_name"])
	assert.Equal(t, "Buyer One", user["name"])
}
