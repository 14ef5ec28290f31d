package handlers

import (
	"github.com/anyango5/cooking_class/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ClassID string `json:"class_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Content *string `json:"content"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

func CreateReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	classID, _ := uuid.Parse(req.ClassID)

	review, err := services.CreateReview(services.CreateReviewInput{
		ClassID: classID,
		Content: req.Content,
		Rating:  req.Rating,
	}, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func UpdateReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.UpdateReview(reviewID, userID, services.UpdateReviewInput{
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(review)
}

func DeleteReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	if err := services.DeleteReview(reviewID, userID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}

func GetClassReviews(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Query("classId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or missing classId"})
	}

	reviews, err := services.GetClassReviews(classID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(reviews)
}
