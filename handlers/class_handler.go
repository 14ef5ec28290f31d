package handlers

import (
	"github.com/anyango5/cooking_class/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type CreateClassRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	MaxStudents int     `json:"max_students" validate:"required,gt=0"`
	Duration    string  `json:"duration" validate:"required"`
	Difficulty  string  `json:"difficulty" validate:"required"`
	CuisineType string  `json:"cuisine_type" validate:"required"`

	Menu                  *string `json:"menu"`
	Schedule              *string `json:"schedule"`
	Highlights            *string `json:"highlights"`
	AdditionalInformation *string `json:"additional_information"`
}

type UpdateClassRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	MaxStudents *int     `json:"max_students" validate:"omitempty,gt=0"`
	Duration    *string  `json:"duration"`
	Difficulty  *string  `json:"difficulty"`
	CuisineType *string  `json:"cuisine_type"`

	Menu                  *string `json:"menu"`
	Schedule              *string `json:"schedule"`
	Highlights            *string `json:"highlights"`
	AdditionalInformation *string `json:"additional_information"`
}

func CreateClass(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	instructorID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	class, err := services.CreateClass(services.CreateClassInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		MaxStudents: req.MaxStudents,
		Duration:    req.Duration,
		Difficulty:  req.Difficulty,
		CuisineType: req.CuisineType,

		Menu:                  req.Menu,
		Schedule:              req.Schedule,
		Highlights:            req.Highlights,
		AdditionalInformation: req.AdditionalInformation,
	}, instructorID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(class)
}

func UpdateClass(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	instructorID, _ := uuid.Parse(claims["user_id"].(string))

	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	var req UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	class, err := services.UpdateClass(classID, services.UpdateClassInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		MaxStudents: req.MaxStudents,
		Duration:    req.Duration,
		Difficulty:  req.Difficulty,
		CuisineType: req.CuisineType,

		Menu:                  req.Menu,
		Schedule:              req.Schedule,
		Highlights:            req.Highlights,
		AdditionalInformation: req.AdditionalInformation,
	}, instructorID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(class)
}

func DeleteClass(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	instructorID, _ := uuid.Parse(claims["user_id"].(string))

	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	if err := services.DeleteClass(classID, instructorID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Class deleted successfully"})
}

func GetAllClasses(c *fiber.Ctx) error {
	classes, err := services.GetAllClasses()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(classes)
}

func GetClassByID(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	class, err := services.GetClassByID(classID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(class)
}

func GetMyClasses(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	instructorID, _ := uuid.Parse(claims["user_id"].(string))

	classes, err := services.GetInstructorClasses(instructorID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(classes)
}

func GetAvailableSpots(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	spots, err := services.GetAvailableSpots(classID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"class_id": classID, "available_spots": spots})
}

// GetClassBookings lists the roster for one class. Only the owning
// instructor may see it.
func GetClassBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))

	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class id"})
	}

	class, err := services.GetClassByID(classID)
	if err != nil {
		return serviceError(c, err)
	}
	if class.InstructorID != callerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the instructor for this class"})
	}

	bookings, err := services.GetClassBookings(classID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bookings)
}
