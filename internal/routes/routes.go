package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tradegate/marketplace-backend/internal/config"
	"github.com/tradegate/marketplace-backend/internal/handlers"
	"github.com/tradegate/marketplace-backend/internal/middleware"
	"github.com/tradegate/marketplace-backend/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	productHandler *handlers.ProductHandler,
	rfqHandler *handlers.RFQHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	jwtGuard := middleware.JWTProtected(cfg)
	adminGuard := middleware.RequireRole(models.RoleAdmin)

	api.Get("/health", healthHandler.Check)

	// Auth: register/login/logout are public; logout is also served on GET
	// and succeeds without a session.
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/logout", authHandler.Logout)
	auth.Get("/me", jwtGuard, authHandler.Me)
	auth.Put("/me", jwtGuard, authHandler.UpdateMe)

	// Categories: reads are public, writes are admin-only.
	api.Get("/categories", categoryHandler.List)
	api.Get("/categories/:id", categoryHandler.Get)
	api.Post("/categories", jwtGuard, adminGuard, categoryHandler.Create)
	api.Put("/categories/:id", jwtGuard, adminGuard, categoryHandler.Update)
	api.Delete("/categories/:id", jwtGuard, adminGuard, categoryHandler.Delete)

	// Products: reads are public; creation is seller-only, mutation is
	// owner-or-admin (ownership re-checked in the service).
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.Get)
	api.Post("/products", jwtGuard, middleware.RequireRole(models.RoleSeller), productHandler.Create)
	api.Put("/products/:id", jwtGuard, middleware.RequireRole(models.RoleSeller, models.RoleAdmin), productHandler.Update)
	api.Delete("/products/:id", jwtGuard, middleware.RequireRole(models.RoleSeller, models.RoleAdmin), productHandler.Delete)

	// RFQs: buyer-only, scoped to the calling buyer.
	rfq := api.Group("/rfq", jwtGuard, middleware.RequireRole(models.RoleBuyer))
	rfq.Post("/", rfqHandler.Create)
	rfq.Get("/", rfqHandler.List)
	rfq.Get("/:id", rfqHandler.Get)
	rfq.Put("/:id/status", rfqHandler.UpdateStatus)

	// Admin user directory.
	admin := api.Group("/admin", jwtGuard, adminGuard)
	admin.Get("/users", userHandler.List)
	admin.Put("/users/:id/verify", userHandler.SetVerified)
}
