package handlers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUserDirectory(t *testing.T) {
	env := setupEnv(t)
	adminCookie := env.seedAdmin(t, "admin@example.com")
	for i := 0; i < 3; i++ {
		env.register(t, fmt.Sprintf("Buyer %d", i), fmt.Sprintf("buyer%d@example.com", i), "buyer")
	}

	resp := env.request(t, fiber.MethodGet, "/api/admin/users?role=buyer&limit=2", nil, adminCookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(3), body["total"])
	assert.Len(t, body["users"], 2)
}

func TestAdminUserDirectoryGuarded(t *testing.T) {
	env := setupEnv(t)
	buyerCookie, _ := env.register(t, "Buyer", "buyer@example.com", "buyer")

	resp := env.request(t, fiber.MethodGet, "/api/admin/users", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, fiber.MethodGet, "/api/admin/users", nil, buyerCookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminVerifyToggle(t *testing.T) {
	env := setupEnv(t)
	adminCookie := env.seedAdmin(t, "admin@example.com")
	_, body := env.register(t, "Supplier", "supplier@example.com", "seller")
	user := body["user"].(map[string]any)
	id := user["id"].(string)

	resp := env.request(t, fiber.MethodPut, "/api/admin/users/"+id+"/verify", map[string]any{"verified": true}, adminCookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, true, updated["verified"])

	resp = env.request(t, fiber.MethodPut, "/api/admin/users/"+id+"/verify", map[string]any{}, adminCookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
