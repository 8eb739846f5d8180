package main

import (
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"doclib/docs"
	"doclib/internal/config"
	handlers "doclib/internal/http/handler"
	"doclib/internal/http/middleware"
)

// multipartOverhead is the request body allowance on top of the file size limit for form fields and boundaries.
const multipartOverhead = 1 << 20

// newServer builds the fiber app with middleware, API routes, metrics and API docs.
func newServer(cfg *config.AppConfig, log logrus.FieldLogger, deps handlers.Deps, reg *prometheus.Registry) (*fiber.App, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.WithError(err).WithField("tz", cfg.Timezone).Warn("unknown timezone, using UTC")
		loc = time.UTC
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		BodyLimit:             int(cfg.Upload.MaxBytes) + multipartOverhead,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: cfg.AppEnv != "development",
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log.WithField("component", "http"), loc))
	app.Use(promMiddleware.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		ExposeHeaders: strings.Join([]string{middleware.RequestIDHeader, fiber.HeaderContentDisposition}, ","),
	}))

	handlers.RegisterRoutes(app, deps)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}
