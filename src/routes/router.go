package routes

import (
	"time"

	"Backend-Booking-Designer/src/controllers"
	"Backend-Booking-Designer/src/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Dependencies are the controllers and settings the routes need.
type Dependencies struct {
	Users         *controllers.UserController
	Scheduler     *controllers.SchedulerController
	Designer      *controllers.DesignerController
	SessionSecret []byte
	SessionTTL    time.Duration
}

func InitRoutes(app *fiber.App, deps Dependencies) {
	UserRoutes(app, deps.Users)
	SchedulerRoutes(app, deps.Scheduler)
	DesignerRoutes(app, deps.Designer, deps.SessionSecret, deps.SessionTTL)

	app.Get("/metrics", metrics.Handler())
	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
