package routes

import (
	"time"

	"Backend-Booking-Designer/src/controllers"
	"Backend-Booking-Designer/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// DesignerRoutes ทุกเส้นทางของ designer ผูกกับ session cookie
func DesignerRoutes(app *fiber.App, dc *controllers.DesignerController, secret []byte, ttl time.Duration) {
	designerRoutes := app.Group("/designer", middleware.DesignerSession(secret, ttl))
	designerRoutes.Get("/", dc.Page)
	designerRoutes.Get("/state", dc.State)
	designerRoutes.Get("/availability.ics", dc.Availability)

	designerRoutes.Patch("/blueprint", dc.UpdateBlueprint)
	designerRoutes.Post("/blueprint/reset", dc.ResetBlueprint)

	designerRoutes.Post("/fields", dc.AddField)
	designerRoutes.Post("/fields/:index/move", dc.MoveField)
	designerRoutes.Delete("/fields/:index", dc.DeleteField)

	designerRoutes.Post("/weekdays/:day/toggle", dc.ToggleWeekday)

	designerRoutes.Post("/preview/submissions", dc.PreviewSubmission)
	designerRoutes.Post("/public/submissions", dc.PublicSubmission)
	designerRoutes.Delete("/submissions", dc.ClearSubmissions)

	designerRoutes.Post("/login", dc.Login)
	designerRoutes.Post("/view", dc.SwitchView)
	designerRoutes.Post("/reload", dc.Reload)
}
