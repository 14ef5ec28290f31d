package handlers

import (
	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/anyango5/cooking_class/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UpdateProfileRequest struct {
	FullName        *string   `json:"full_name"`
	Bio             *string   `json:"bio"`
	YearsExperience *int      `json:"years_experience" validate:"omitempty,gte=0"`
	Specialties     *[]string `json:"specialties"`
	Awards          *[]string `json:"awards"`
	Languages       *[]string `json:"languages"`
	ProfileImageURL *string   `json:"profile_image_url"`
}

func GetProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.YearsExperience != nil {
		user.YearsExperience = req.YearsExperience
	}
	if req.Specialties != nil {
		user.Specialties = datatypes.NewJSONSlice(*req.Specialties)
	}
	if req.Awards != nil {
		user.Awards = datatypes.NewJSONSlice(*req.Awards)
	}
	if req.Languages != nil {
		user.Languages = datatypes.NewJSONSlice(*req.Languages)
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = req.ProfileImageURL
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(user)
}

func GetMyCertificates(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	certificates, err := services.GetStudentCertificates(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(certificates)
}
