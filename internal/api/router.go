package api

import (
	"wealthwise-chat/docs"
	"wealthwise-chat/internal/api/handlers"
	"wealthwise-chat/pkg/auth"
	"wealthwise-chat/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	chatHandler *handlers.ChatHandler,
	catalogHandler *handlers.CatalogHandler,
	bookingHandler *handlers.BookingHandler,
	healthHandler *handlers.HealthHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Panics recovered by the middleware and unknown errors land here;
			// the caller only ever sees a stable error shape.
			code := fiber.StatusInternalServerError
			message := "Internal server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			} else {
				appLogger.Error("Unhandled error", zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": message,
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", healthHandler.Health)

	// Chat endpoint, path kept compatible with the platform's SPA client.
	functions := app.Group("/functions/v1")
	functions.Post("/finance-chat", chatHandler.Chat)

	// Public catalog views.
	api := app.Group("/api/v1")
	api.Get("/courses", catalogHandler.ListCourses)
	api.Get("/experts", catalogHandler.ListExperts)
	api.Get("/videos", catalogHandler.ListVideos)

	// User-scoped routes.
	protected := api.Group("", middleware.AuthMiddleware(jwtManager, appLogger))
	protected.Get("/bookings", bookingHandler.ListBookings)

	return app
}
