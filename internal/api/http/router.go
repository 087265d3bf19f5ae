package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Metrics *handlers.MetricsHandler
	Home    *handlers.HomeHandler
	Search  *handlers.SearchHandler
	Profile *handlers.ProfileHandler
	Admin   *handlers.AdminHandler
	Account *handlers.AccountHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Show)

	app.Get("/", cfg.Home.Show)
	app.Post("/", cfg.Home.Search)

	app.Get("/search", cfg.Search.Show)
	app.Post("/search", cfg.Search.Submit)
	app.Post("/search/retry", cfg.Search.Retry)

	artisan := app.Group("/artisan/:id")
	artisan.Get("", cfg.Profile.Show)
	artisan.Post("/retry", cfg.Profile.Retry)
	artisan.Post("/reviews", cfg.Profile.AddReview)

	admin := app.Group("/admin")
	admin.Get("", cfg.Admin.Show)
	admin.Post("/retry", cfg.Admin.Retry)
	admin.Post("/draft", cfg.Admin.StartCreate)
	admin.Patch("/draft", cfg.Admin.SetField)
	admin.Delete("/draft", cfg.Admin.Cancel)
	admin.Post("/draft/submit", cfg.Admin.Submit)
	admin.Post("/draft/:id", cfg.Admin.StartEdit)
	admin.Delete("/artisans/:id", cfg.Admin.Delete)

	app.Get("/login", cfg.Account.ShowLogin)
	app.Patch("/login", cfg.Account.SetLoginField)
	app.Post("/login", cfg.Account.Login)
	app.Get("/register", cfg.Account.ShowRegister)
	app.Patch("/register", cfg.Account.SetRegisterField)
	app.Post("/register", cfg.Account.Register)
	app.Post("/logout", cfg.Account.Logout)
}
