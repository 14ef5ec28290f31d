package routes

import (
	"github.com/anyango5/cooking_class/handlers"
	"github.com/anyango5/cooking_class/middleware"
	ws "github.com/anyango5/cooking_class/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func ClassRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Reads are public; anything that mutates a listing or exposes a roster
	// requires a session. The instructor/me route is registered before the
	// :classId routes so it is not swallowed by the param matcher.
	api.Get("/classes", handlers.GetAllClasses)
	api.Post("/classes", middleware.Protected(), handlers.CreateClass)
	api.Get("/classes/instructor/me", middleware.Protected(), handlers.GetMyClasses)
	api.Get("/classes/:classId", handlers.GetClassByID)
	api.Put("/classes/:classId", middleware.Protected(), handlers.UpdateClass)
	api.Delete("/classes/:classId", middleware.Protected(), handlers.DeleteClass)
	api.Get("/classes/:classId/spots", handlers.GetAvailableSpots)
	api.Get("/classes/:classId/bookings", middleware.Protected(), handlers.GetClassBookings)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/classes/:classId", websocket.New(ws.ServeClassSpots))
}
