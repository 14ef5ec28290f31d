package services

import (
	"errors"

	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateClassInput struct {
	Title       string
	Description string
	Location    string
	Price       float64
	MaxStudents int
	Duration    string
	Difficulty  string
	CuisineType string

	Menu                  *string
	Schedule              *string
	Highlights            *string
	AdditionalInformation *string
}

// UpdateClassInput is an explicit patch: only non-nil fields are applied.
type UpdateClassInput struct {
	Title       *string
	Description *string
	Location    *string
	Price       *float64
	MaxStudents *int
	Duration    *string
	Difficulty  *string
	CuisineType *string

	Menu                  *string
	Schedule              *string
	Highlights            *string
	AdditionalInformation *string
}

func CreateClass(input CreateClassInput, instructorID uuid.UUID) (*models.Class, error) {
	class := models.Class{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		InstructorID: instructorID,
		Price:        input.Price,
		MaxStudents:  input.MaxStudents,
		Rating:       0,
		Duration:     input.Duration,
		Difficulty:   input.Difficulty,
		CuisineType:  input.CuisineType,

		Menu:                  input.Menu,
		Schedule:              input.Schedule,
		Highlights:            input.Highlights,
		AdditionalInformation: input.AdditionalInformation,
	}
	if err := database.DB.Create(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func UpdateClass(classID uuid.UUID, input UpdateClassInput, instructorID uuid.UUID) (*models.Class, error) {
	var class models.Class
	if err := database.DB.First(&class, "id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if class.InstructorID != instructorID {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		class.Title = *input.Title
	}
	if input.Description != nil {
		class.Description = *input.Description
	}
	if input.Location != nil {
		class.Location = *input.Location
	}
	if input.Price != nil {
		class.Price = *input.Price
	}
	if input.MaxStudents != nil {
		class.MaxStudents = *input.MaxStudents
	}
	if input.Duration != nil {
		class.Duration = *input.Duration
	}
	if input.Difficulty != nil {
		class.Difficulty = *input.Difficulty
	}
	if input.CuisineType != nil {
		class.CuisineType = *input.CuisineType
	}
	if input.Menu != nil {
		class.Menu = input.Menu
	}
	if input.Schedule != nil {
		class.Schedule = input.Schedule
	}
	if input.Highlights != nil {
		class.Highlights = input.Highlights
	}
	if input.AdditionalInformation != nil {
		class.AdditionalInformation = input.AdditionalInformation
	}

	if err := database.DB.Save(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// DeleteClass removes the class together with its bookings and reviews in a
// single transaction, so a failure partway cannot leave a half-deleted class.
func DeleteClass(classID, instructorID uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.First(&class, "id = ?", classID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if class.InstructorID != instructorID {
			return ErrForbidden
		}

		if err := tx.Where("class_id = ?", classID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", classID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&class).Error
	})
}

func GetAllClasses() ([]models.Class, error) {
	var classes []models.Class
	err := database.DB.
		Preload("Reviews").
		Preload("Instructor").
		Preload("Bookings", "status = ?", models.BookingStatusConfirmed).
		Order("created_at desc").
		Find(&classes).Error
	return classes, err
}

func GetClassByID(classID uuid.UUID) (*models.Class, error) {
	var class models.Class
	err := database.DB.
		Preload("Reviews.User").
		Preload("Instructor").
		Preload("Bookings.User").
		First(&class, "id = ?", classID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

func GetInstructorClasses(instructorID uuid.UUID) ([]models.Class, error) {
	var classes []models.Class
	err := database.DB.
		Preload("Reviews").
		Preload("Bookings").
		Where("instructor_id = ?", instructorID).
		Order("created_at desc").
		Find(&classes).Error
	return classes, err
}

// GetAvailableSpots reports remaining capacity. Capacity is always derived
// from the confirmed booking count, never cached on the class row.
func GetAvailableSpots(classID uuid.UUID) (int, error) {
	var class models.Class
	if err := database.DB.First(&class, "id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	var confirmed int64
	if err := database.DB.Model(&models.Booking{}).
		Where("class_id = ? AND status = ?", classID, models.BookingStatusConfirmed).
		Count(&confirmed).Error; err != nil {
		return 0, err
	}

	return class.MaxStudents - int(confirmed), nil
}
