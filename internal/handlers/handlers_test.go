package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tradegate/marketplace-backend/internal/config"
	"github.com/tradegate/marketplace-backend/internal/handlers"
	"github.com/tradegate/marketplace-backend/internal/middleware"
	"github.com/tradegate/marketplace-backend/internal/models"
	"github.com/tradegate/marketplace-backend/internal/routes"
	"github.com/tradegate/marketplace-backend/internal/services"
)

type testEnv struct {
	app  *fiber.App
	db   *gorm.DB
	cfg  *config.Config
	auth *services.AuthService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.RFQ{},
	))

	cfg := &config.Config{
		JWTSecret:   "test-secret-key-32-characters-long",
		TokenExpiry: 7 * 24 * time.Hour,
		AppEnv:      "test",
		CORSOrigins: "*",
	}

	authService := services.NewAuthService(db, cfg)
	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService, cfg),
		handlers.NewCategoryHandler(services.NewCategoryService(db), cfg),
		handlers.NewProductHandler(services.NewProductService(db), cfg),
		handlers.NewRFQHandler(services.NewRFQService(db), cfg),
		handlers.NewUserHandler(services.NewUserService(db), cfg),
		handlers.NewHealthHandler(db),
	)

	return &testEnv{app: app, db: db, cfg: cfg, auth: authService}
}

// request performs a JSON request against the test app, attaching the session
// cookie when given.
func (e *testEnv) request(t *testing.T, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func authCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.AuthCookieName {
			return c
		}
	}
	return nil
}

// register creates a user through the public endpoint and returns its session
// cookie plus the decoded response body.
func (e *testEnv) register(t *testing.T, name, email, role string) (*http.Cookie, map[string]any) {
	t.Helper()

	resp := e.request(t, fiber.MethodPost, "/api/auth/register", map[string]any{
		"name":     name,
		"email":    email,
		"password": "s3cret-pass",
		"role":     role,
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	cookie := authCookie(resp)
	require.NotNil(t, cookie)

	var body map[string]any
	decodeBody(t, resp, &body)
	return cookie, body
}

// seedAdmin inserts an admin directly (admin is not self-registrable) and
// mints a session cookie for it.
func (e *testEnv) seedAdmin(t *testing.T, email string) *http.Cookie {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := models.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	require.NoError(t, e.db.Create(&admin).Error)

	token, err := e.auth.GenerateToken(&admin)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.AuthCookieName, Value: token}
}
