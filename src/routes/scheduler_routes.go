package routes

import (
	"Backend-Booking-Designer/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func SchedulerRoutes(app *fiber.App, sc *controllers.SchedulerController) {
	schedulerRoutes := app.Group("/scheduler")
	schedulerRoutes.Post("/config", sc.CreateConfig)
	schedulerRoutes.Get("/config", sc.GetConfig)
	schedulerRoutes.Patch("/config", sc.UpdateConfig)
}
