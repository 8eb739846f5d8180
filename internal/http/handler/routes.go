package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"doclib/internal/service"
)

// Pinger reports backend reachability. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps are the services behind the HTTP routes. DB may be nil when records are kept in memory.
type Deps struct {
	DB        Pinger
	Users     service.UserService
	Documents service.DocumentService
	Stats     service.StatsService
}

// RegisterRoutes attaches the API under /api, stored file serving under /uploads
// and the health probes to app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Post("/users", RegisterUser(deps.Users))
	api.Get("/users", ListUsers(deps.Users))
	api.Get("/users/:id", GetUser(deps.Users))

	api.Post("/documents", UploadDocument(deps.Documents))
	api.Get("/documents", ListDocuments(deps.Documents))
	api.Get("/documents/:id", GetDocument(deps.Documents))
	api.Get("/documents/:id/download", DownloadDocument(deps.Documents))
	api.Delete("/documents/:id", DeleteDocument(deps.Documents))

	api.Get("/stats", GetStats(deps.Stats))

	app.Get("/uploads/:filename", ServeUpload(deps.Documents))
}

// HealthCheck godoc
// @Summary      Readiness check
// @Description  Pings the SQL record backend when one is configured.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  errorPayload
// @Router       /health [get]
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, CodeServiceUnavailable, "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary  Liveness probe
// @Tags     health
// @Success  200
// @Router   /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  User and document counts, total stored size and a demo download figure.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  model.Stats
// @Failure      500  {object}  errorPayload
// @Router       /api/stats [get]
func GetStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Snapshot(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "")
		}
		return c.JSON(stats)
	}
}

// validID checks the :id route parameter. Record ids are UUIDs.
func validID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}
