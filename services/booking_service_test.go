package services_test

import (
	"testing"
	"time"

	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/anyango5/cooking_class/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	class := createTestClass(t, instructor, 8)

	booking, err := services.CreateBooking(class.ID, student.ID)
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, class.ID, booking.ClassID)
	assert.Equal(t, student.ID, booking.UserID)
	assert.Equal(t, "Handmade Pasta Night", booking.Class.Title)
	assert.Equal(t, "Sam Otieno", booking.User.FullName)

	spots, err := services.GetAvailableSpots(class.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, spots)
}

func TestCreateBooking_ClassNotFound(t *testing.T) {
	setupTestDB(t)

	student := createTestUser(t, "Sam Otieno", "sam@example.com")

	_, err := services.CreateBooking(uuid.New(), student.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCreateBooking_DuplicateConfirmed(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	class := createTestClass(t, instructor, 8)

	_, err := services.CreateBooking(class.ID, student.ID)
	require.NoError(t, err)

	_, err = services.CreateBooking(class.ID, student.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyBooked)

	var count int64
	require.NoError(t, database.DB.Model(&models.Booking{}).
		Where("class_id = ? AND user_id = ? AND status = ?", class.ID, student.ID, models.BookingStatusConfirmed).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateBooking_ReactivatesCancelledRow(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	class := createTestClass(t, instructor, 8)

	first, err := services.CreateBooking(class.ID, student.ID)
	require.NoError(t, err)

	_, err = services.CancelBooking(first.ID, student.ID)
	require.NoError(t, err)

	second, err := services.CreateBooking(class.ID, student.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "re-booking must reuse the cancelled row")
	assert.Equal(t, models.BookingStatusConfirmed, second.Status)

	var total int64
	require.NoError(t, database.DB.Model(&models.Booking{}).
		Where("class_id = ? AND user_id = ?", class.ID, student.ID).
		Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestBookingCapacityLifecycle(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	alice := createTestUser(t, "Alice Wanjiru", "alice@example.com")
	ben := createTestUser(t, "Ben Carter", "ben@example.com")
	class := createTestClass(t, instructor, 1)

	aliceBooking, err := services.CreateBooking(class.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, aliceBooking.Status)

	spots, err := services.GetAvailableSpots(class.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, spots)

	_, err = services.CreateBooking(class.ID, ben.ID)
	assert.ErrorIs(t, err, services.ErrClassFull)

	_, err = services.CancelBooking(aliceBooking.ID, alice.ID)
	require.NoError(t, err)

	spots, err = services.GetAvailableSpots(class.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, spots)

	benBooking, err := services.CreateBooking(class.ID, ben.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, benBooking.Status)
}

func TestCancelBooking(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	stranger := createTestUser(t, "Eve Mallory", "eve@example.com")
	class := createTestClass(t, instructor, 8)

	booking, err := services.CreateBooking(class.ID, student.ID)
	require.NoError(t, err)

	_, err = services.CancelBooking(uuid.New(), student.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = services.CancelBooking(booking.ID, stranger.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	cancelled, err := services.CancelBooking(booking.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	_, err = services.CancelBooking(booking.ID, student.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyCancelled)
}

func TestGetUserBookings_NewestFirst(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	older := createTestClass(t, instructor, 8)
	newer := createTestClass(t, instructor, 8)

	first, err := services.CreateBooking(older.ID, student.ID)
	require.NoError(t, err)
	backdate(t, *first, 48*time.Hour)

	second, err := services.CreateBooking(newer.ID, student.ID)
	require.NoError(t, err)

	bookings, err := services.GetUserBookings(student.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
}

func TestUpdateBookingStatus(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	class := createTestClass(t, instructor, 8)

	booking, err := services.CreateBooking(class.ID, student.ID)
	require.NoError(t, err)

	updated, err := services.UpdateBookingStatus(booking.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, updated.Status)

	_, err = services.UpdateBookingStatus(uuid.New(), models.BookingStatusCompleted)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetClassBookings(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	alice := createTestUser(t, "Alice Wanjiru", "alice@example.com")
	ben := createTestUser(t, "Ben Carter", "ben@example.com")
	class := createTestClass(t, instructor, 8)

	_, err := services.CreateBooking(class.ID, alice.ID)
	require.NoError(t, err)
	_, err = services.CreateBooking(class.ID, ben.ID)
	require.NoError(t, err)

	bookings, err := services.GetClassBookings(class.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.NotEmpty(t, b.User.FullName)
	}
}
