package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/savioruz/courtside/config"
	_ "github.com/savioruz/courtside/docs" // Swagger docs
	"github.com/savioruz/courtside/internal/delivery/http/middleware"
	bookingHandler "github.com/savioruz/courtside/internal/domains/bookings/handler"
	courtHandler "github.com/savioruz/courtside/internal/domains/courts/handler"
	"github.com/savioruz/courtside/pkg/logger"
)

type Handlers struct {
	Court   *courtHandler.Handler
	Booking *bookingHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title courtside API
// @version 1.0
// @description Validates, prices and forwards badminton court bookings.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	apiV1Group := app.Group("/v1")
	{
		handlers.Court.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
