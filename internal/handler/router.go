package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp builds the fiber application with all routes registered.
func NewApp(analyzer Analyzer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "trendscore-go",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	h := NewTrendHandler(analyzer)

	app.Get("/healthz", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Post("/trending-keywords", h.Analyze)
	api.Get("/trending-keywords/stats", h.Stats)

	return app
}
