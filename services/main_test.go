package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level gorm handle at a fresh in-memory
// sqlite database. Each test gets its own named database so shared-cache
// connections within one test see the same data without leaking across tests.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Booking{},
		&models.Review{},
		&models.Certificate{},
	))

	database.DB = db
}

func createTestUser(t *testing.T, name, email string) models.User {
	t.Helper()
	user := models.User{
		FullName: name,
		Email:    email,
		Password: "not-a-real-hash",
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createTestClass(t *testing.T, instructor models.User, maxStudents int) models.Class {
	t.Helper()
	class := models.Class{
		Title:        "Handmade Pasta Night",
		Description:  "Fresh tagliatelle from scratch",
		Location:     "12 Market Lane",
		InstructorID: instructor.ID,
		Price:        65,
		MaxStudents:  maxStudents,
		Duration:     "3 hours",
		Difficulty:   "Beginner",
		CuisineType:  "Italian",
	}
	require.NoError(t, database.DB.Create(&class).Error)
	return class
}

// backdate shifts a booking's created_at so ordering and sweep tests have
// distinct timestamps to work with.
func backdate(t *testing.T, booking models.Booking, age time.Duration) {
	t.Helper()
	require.NoError(t, database.DB.Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Update("created_at", time.Now().Add(-age)).Error)
}
