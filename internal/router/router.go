package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artneelam/studio-api/internal/config"
	"github.com/artneelam/studio-api/internal/handler"
	"github.com/artneelam/studio-api/internal/middleware"
	"github.com/artneelam/studio-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	LeadHandler         *handler.LeadHandler
	StudentHandler      *handler.StudentHandler
	AttendanceHandler   *handler.AttendanceHandler
	PaymentHandler      *handler.PaymentHandler
	ExpenseHandler      *handler.ExpenseHandler
	NoticeHandler       *handler.NoticeHandler
	DashboardHandler    *handler.DashboardHandler
	SettingsHandler     *handler.SettingsHandler
	MessageHandler      *handler.MessageHandler
	RegistrationHandler *handler.RegistrationHandler
	IntegrationHandler  *handler.IntegrationHandler
	PortalHandler       *handler.PortalHandler
	SeedHandler         *handler.SeedHandler
	JWTMiddleware       fiber.Handler
	APIKeyMiddleware    fiber.Handler
	CacheInvalidator    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}
	cacheBust := deps.CacheInvalidator
	if cacheBust == nil {
		cacheBust = func(c *fiber.Ctx) error { return c.Next() }
	}
	adminOnly := middleware.RequireRole("admin")

	// Public intake form, throttled per IP.
	if deps.RegistrationHandler != nil {
		register := api.Group("/register", middleware.RateLimit("register", 5, time.Minute), cacheBust)
		deps.RegistrationHandler.Register(register)
	}

	// Server-to-server lead intake guarded by a shared API key.
	if deps.IntegrationHandler != nil {
		integrations := api.Group("/integrations", cacheBust)
		if deps.APIKeyMiddleware != nil {
			integrations.Use(deps.APIKeyMiddleware)
		}
		deps.IntegrationHandler.Register(integrations)
	}

	// Admin surface. Mutations drop the cached dashboard snapshot.
	if deps.LeadHandler != nil {
		deps.LeadHandler.Register(api.Group("/leads", jwtMiddleware, adminOnly, cacheBust))
	}
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students", jwtMiddleware, adminOnly, cacheBust))
	}
	if deps.AttendanceHandler != nil {
		deps.AttendanceHandler.Register(api.Group("/attendance", jwtMiddleware, adminOnly, cacheBust))
	}
	if deps.PaymentHandler != nil {
		deps.PaymentHandler.Register(api.Group("/payments", jwtMiddleware, adminOnly, cacheBust))
	}
	if deps.ExpenseHandler != nil {
		deps.ExpenseHandler.Register(api.Group("/expenses", jwtMiddleware, adminOnly, cacheBust))
	}
	if deps.NoticeHandler != nil {
		deps.NoticeHandler.Register(api.Group("/notices", jwtMiddleware, adminOnly, cacheBust))
	}
	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api.Group("/dashboard", jwtMiddleware, adminOnly))
	}
	if deps.SettingsHandler != nil {
		deps.SettingsHandler.Register(api.Group("/settings", jwtMiddleware, adminOnly))
	}
	if deps.MessageHandler != nil {
		deps.MessageHandler.Register(api.Group("/messages", jwtMiddleware, adminOnly))
	}

	// Read-only parent portal; per-student authorization happens in the handler.
	if deps.PortalHandler != nil {
		deps.PortalHandler.Register(api.Group("/portal", jwtMiddleware, middleware.RequireRole("admin", "parent")))
	}

	// Development tooling; the seed service itself refuses to run in production.
	if deps.SeedHandler != nil {
		deps.SeedHandler.Register(api.Group("/seed", jwtMiddleware, adminOnly, cacheBust))
	}
}
