package routes

import (
	"github.com/anyango5/cooking_class/handlers"
	"github.com/anyango5/cooking_class/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/reviews", handlers.GetClassReviews)
	api.Post("/reviews", middleware.Protected(), handlers.CreateReview)
	api.Put("/reviews/:reviewId", middleware.Protected(), handlers.UpdateReview)
	api.Delete("/reviews/:reviewId", middleware.Protected(), handlers.DeleteReview)
}
