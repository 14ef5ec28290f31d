package routes

import (
	"github.com/anyango5/cooking_class/handlers"
	"github.com/anyango5/cooking_class/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
	profile.Get("/certificates", handlers.GetMyCertificates)
}
