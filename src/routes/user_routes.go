package routes

import (
	"Backend-Booking-Designer/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// UserRoutes กำหนดเส้นทางสำหรับ User API
func UserRoutes(app *fiber.App, uc *controllers.UserController) {
	userRoutes := app.Group("/users")
	userRoutes.Get("/", uc.GetUsers)         // ดึงผู้ใช้ทั้งหมด
	userRoutes.Post("/", uc.CreateUser)      // สร้างผู้ใช้ใหม่
	userRoutes.Get("/:id", uc.GetUserByID)   // ดึงข้อมูลผู้ใช้ตาม ID
	userRoutes.Patch("/:id", uc.UpdateUser)  // อัปเดตบางฟิลด์
	userRoutes.Delete("/:id", uc.DeleteUser) // ลบผู้ใช้
}
