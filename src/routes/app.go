package routes

import (
	"log/slog"

	"Backend-Booking-Designer/src/metrics"
	"Backend-Booking-Designer/src/middleware"
	"Backend-Booking-Designer/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// NewApp สร้าง fiber app พร้อม middleware ทั้งหมดและ routes
func NewApp(allowedOrigins string, logger *slog.Logger, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Booking Designer",
		ErrorHandler: utils.FiberErrorHandler,
	})

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, " + middleware.CorrelationIDHeader,
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))
	app.Use(middleware.CorrelationID())
	app.Use(middleware.SlogLogger(logger))
	app.Use(metrics.FiberMiddleware())

	InitRoutes(app, deps)
	return app
}
