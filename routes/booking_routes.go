package routes

import (
	"github.com/anyango5/cooking_class/handlers"
	"github.com/anyango5/cooking_class/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Delete("/:bookingId", handlers.CancelBooking)
}
