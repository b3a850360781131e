package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateRoleGuard(t *testing.T) {
	env := setupEnv(t)
	buyerCookie, _ := env.register(t, "Buyer", "buyer@example.com", "buyer")

	body := map[string]any{"name": "Home & Garden"}

	resp := env.request(t, fiber.MethodPost, "/api/categories", body, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, fiber.MethodPost, "/api/categories", body, buyerCookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	adminCookie := env.seedAdmin(t, "admin@example.com")
	resp = env.request(t, fiber.MethodPost, "/api/categories", body, adminCookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var category map[string]any
	decodeBody(t, resp, &category)
	assert.Equal(t, "home-garden", category["slug"])

	// Same name slugifies to the same slug.
	resp = env.request(t, fiber.MethodPost, "/api/categories", body, adminCookie)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCategoryCreateRequiresName(t *testing.T) {
	env := setupEnv(t)
	adminCookie := env.seedAdmin(t, "admin@example.com")

	resp := env.request(t, fiber.MethodPost, "/api/categories", map[string]any{"icon": "leaf"}, adminCookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCategoryListIsPublic(t *testing.T) {
	env := setupEnv(t)
	adminCookie := env.seedAdmin(t, "admin@example.com")

	env.request(t, fiber.MethodPost, "/api/categories", map[string]any{"name": "Electronics"}, adminCookie)
	env.request(t, fiber.MethodPost, "/api/categories", map[string]any{"name": "Hardware", "status": "inactive"}, adminCookie)

	resp := env.request(t, fiber.MethodGet, "/api/categories", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var all []map[string]any
	decodeBody(t, resp, &all)
	assert.Len(t, all, 2)

	resp = env.request(t, fiber.MethodGet, "/api/categories?status=active", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var active []map[string]any
	decodeBody(t, resp, &active)
	require.Len(t, active, 1)
	assert.Equal(t, "electronics", active[0]["slug"])
}

func TestCategoryDeleteThenGet(t *testing.T) {
	env := setupEnv(t)
	adminCookie := env.seedAdmin(t, "admin@example.com")

	resp := env.request(t, fiber.MethodPost, "/api/categories", map[string]any{"name": "Temp"}, adminCookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var category map[string]any
	decodeBody(t, resp, &category)
	id := category["id"].(string)

	resp = env.request(t, fiber.MethodDelete, "/api/categories/"+id, nil, adminCookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.request(t, fiber.MethodGet, "/api/categories/"+id, nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCategoryCreateInfrastructureFailure(t *testing.T) {
	env := setupEnv(t)
	adminCookie := env.seedAdmin(t, "admin@example.com")

	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp := env.request(t, fiber.MethodPost, "/api/categories", map[string]any{"name": "Metals"}, adminCookie)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// A database failure is not the caller's fault and must never read as
	// a validation error or leak driver text.
	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestCategoryUpdateAdminOnly(t *testing.T) {
	env := setupEnv(t)
	adminCookie := env.seedAdmin(t, "admin@example.com")
	sellerCookie, _ := env.register(t, "Seller", "seller@example.com", "seller")

	resp := env.request(t, fiber.MethodPost, "/api/categories", map[string]any{"name": "Metals"}, adminCookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var category map[string]any
	decodeBody(t, resp, &category)
	id := category["id"].(string)

	resp = env.request(t, fiber.MethodPut, "/api/categories/"+id, map[string]any{"name": "Base Metals"}, sellerCookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = env.request(t, fiber.MethodPut, "/api/categories/"+id, map[string]any{"name": "Base Metals"}, adminCookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, "base-metals", updated["slug"])
}
