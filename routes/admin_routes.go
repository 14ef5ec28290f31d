package routes

import (
	"github.com/anyango5/cooking_class/handlers"
	"github.com/anyango5/cooking_class/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/bookings", handlers.AdminGetAllBookings)
	admin.Patch("/bookings/:bookingId/status", handlers.UpdateBookingStatus)
}
