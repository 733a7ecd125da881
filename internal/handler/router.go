package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/planora/planora-backend/internal/config"
	"github.com/planora/planora-backend/internal/middleware"
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/repository"
	"github.com/planora/planora-backend/pkg/token"
)

// NewApp assembles the fiber application: global middleware plus the full
// route table. Protected routes carry the auth middleware per-route because
// public and protected paths interleave under the same prefixes.
func NewApp(
	cfg *config.Config,
	repos *repository.Repositories,
	tokens *token.Manager,
	authHandler *AuthHandler,
	eventHandler *EventHandler,
	vendorHandler *VendorHandler,
) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(fiberlog.New())
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
		}))
	}

	authed := middleware.Authenticate(tokens, repos.Users)
	organizerOnly := middleware.RequireRole(models.RoleOrganizer)
	vendorOnly := middleware.RequireRole(models.RoleVendor)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(models.Message("Event Management System API"))
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authed, authHandler.Me)

	events := api.Group("/events")
	events.Get("/", eventHandler.GetEvents)
	events.Post("/", authed, organizerOnly, eventHandler.CreateEvent)
	events.Get("/:id", eventHandler.GetEvent)
	events.Put("/:id", authed, organizerOnly, eventHandler.UpdateEvent)
	events.Delete("/:id", authed, organizerOnly, eventHandler.DeleteEvent)
	events.Post("/:id/vendors", authed, organizerOnly, eventHandler.AssignVendor)
	events.Delete("/:id/vendors/:vendorId", authed, organizerOnly, eventHandler.UnassignVendor)
	events.Post("/:id/attend", authed, eventHandler.Attend)
	events.Get("/:id/attendees", eventHandler.GetAttendees)
	events.Get("/:id/payment-qr", eventHandler.PaymentQR)

	vendors := api.Group("/vendors")
	vendors.Get("/", vendorHandler.GetVendors)
	// fixed paths before the :id wildcard
	vendors.Get("/profile/me", authed, vendorOnly, vendorHandler.GetMyProfile)
	vendors.Post("/profile", authed, vendorOnly, vendorHandler.UpsertProfile)
	vendors.Get("/events/me", authed, vendorOnly, vendorHandler.GetMyEvents)
	vendors.Post("/services", authed, vendorOnly, vendorHandler.AddService)
	vendors.Delete("/services/:serviceId", authed, vendorOnly, vendorHandler.RemoveService)
	vendors.Put("/availability", authed, vendorOnly, vendorHandler.SetAvailability)
	vendors.Get("/:id", vendorHandler.GetVendor)

	return app
}
