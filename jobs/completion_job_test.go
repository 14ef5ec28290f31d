package jobs_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/jobs"
	"github.com/anyango5/cooking_class/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupJobDB(t *testing.T) {
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

func TestCompleteElapsedBookings(t *testing.T) {
	setupJobDB(t)

	instructor := models.User{FullName: "Nina Rossi", Email: "nina@example.com", Password: "x"}
	student := models.User{FullName: "Sam Otieno", Email: "sam@example.com", Password: "x"}
	require.NoError(t, database.DB.Create(&instructor).Error)
	require.NoError(t, database.DB.Create(&student).Error)

	class := models.Class{
		Title: "Handmade Pasta Night", Description: "d", Location: "l",
		InstructorID: instructor.ID, Price: 65, MaxStudents: 8,
	}
	require.NoError(t, database.DB.Create(&class).Error)

	old := models.Booking{ClassID: class.ID, UserID: student.ID, Status: models.BookingStatusConfirmed}
	recent := models.Booking{ClassID: class.ID, UserID: instructor.ID, Status: models.BookingStatusConfirmed}
	cancelled := models.Booking{ClassID: class.ID, UserID: student.ID, Status: models.BookingStatusCancelled}
	require.NoError(t, database.DB.Create(&old).Error)
	require.NoError(t, database.DB.Create(&recent).Error)
	require.NoError(t, database.DB.Create(&cancelled).Error)

	require.NoError(t, database.DB.Model(&models.Booking{}).
		Where("id = ?", old.ID).
		Update("created_at", time.Now().Add(-31*24*time.Hour)).Error)

	jobs.CompleteElapsedBookings()

	var reloaded models.Booking
	require.NoError(t, database.DB.First(&reloaded, "id = ?", old.ID).Error)
	assert.Equal(t, models.BookingStatusCompleted, reloaded.Status)

	reloaded = models.Booking{}
	require.NoError(t, database.DB.First(&reloaded, "id = ?", recent.ID).Error)
	assert.Equal(t, models.BookingStatusConfirmed, reloaded.Status)

	reloaded = models.Booking{}
	require.NoError(t, database.DB.First(&reloaded, "id = ?", cancelled.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, reloaded.Status)
}

func TestReconcileClassRatings(t *testing.T) {
	setupJobDB(t)

	instructor := models.User{FullName: "Nina Rossi", Email: "nina@example.com", Password: "x"}
	student := models.User{FullName: "Sam Otieno", Email: "sam@example.com", Password: "x"}
	require.NoError(t, database.DB.Create(&instructor).Error)
	require.NoError(t, database.DB.Create(&student).Error)

	class := models.Class{
		Title: "Handmade Pasta Night", Description: "d", Location: "l",
		InstructorID: instructor.ID, Price: 65, MaxStudents: 8,
	}
	require.NoError(t, database.DB.Create(&class).Error)

	// A review written around the recompute path leaves the cache stale;
	// the sweep must repair it.
	review := models.Review{ClassID: class.ID, UserID: student.ID, Content: "c", Rating: 4, Author: "Sam Otieno"}
	require.NoError(t, database.DB.Create(&review).Error)

	jobs.ReconcileClassRatings()

	var reloaded models.Class
	require.NoError(t, database.DB.First(&reloaded, "id = ?", class.ID).Error)
	assert.InDelta(t, 4.0, reloaded.Rating, 1e-9)
}
