package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/anyango5/cooking_class/notifications"
	"github.com/anyango5/cooking_class/websocket"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateBooking reserves a seat for the user. The class row is locked for the
// duration of the transaction so the capacity check and the write cannot
// interleave with a concurrent booking for the last seat.
func CreateBooking(classID, userID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&class, "id = ?", classID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var confirmedForUser int64
		if err := tx.Model(&models.Booking{}).
			Where("class_id = ? AND user_id = ? AND status = ?", classID, userID, models.BookingStatusConfirmed).
			Count(&confirmedForUser).Error; err != nil {
			return err
		}
		if confirmedForUser > 0 {
			return ErrAlreadyBooked
		}

		var confirmed int64
		if err := tx.Model(&models.Booking{}).
			Where("class_id = ? AND status = ?", classID, models.BookingStatusConfirmed).
			Count(&confirmed).Error; err != nil {
			return err
		}
		if confirmed >= int64(class.MaxStudents) {
			return ErrClassFull
		}

		// A previously cancelled booking for the same pair is reactivated
		// instead of inserting a duplicate row.
		var cancelled models.Booking
		err := tx.Where("class_id = ? AND user_id = ? AND status = ?", classID, userID, models.BookingStatusCancelled).
			First(&cancelled).Error
		if err == nil {
			cancelled.Status = models.BookingStatusConfirmed
			if err := tx.Save(&cancelled).Error; err != nil {
				return err
			}
			booking = cancelled
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		booking = models.Booking{
			ClassID: classID,
			UserID:  userID,
			Status:  models.BookingStatusConfirmed,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	if err := database.DB.Preload("Class.Instructor").Preload("User").First(&booking, "id = ?", booking.ID).Error; err != nil {
		return nil, err
	}

	publishSpots(classID)
	go notifications.SendEmail(
		booking.User.FullName,
		booking.User.Email,
		"Your Booking is Confirmed!",
		fmt.Sprintf("<h1>Booking Confirmed</h1><p>Your seat in <b>%s</b> is reserved. See you in the kitchen!</p>", booking.Class.Title),
	)
	go notifications.SendEmail(
		booking.Class.Instructor.FullName,
		booking.Class.Instructor.Email,
		"You Have a New Booking!",
		fmt.Sprintf("<h1>New Booking</h1><p>A student has booked a seat in <b>%s</b>.</p>", booking.Class.Title),
	)

	return &booking, nil
}

// CancelBooking marks the booking cancelled. The row is kept so a later
// re-booking can reactivate it.
func CancelBooking(bookingID, userID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := database.DB.Preload("Class").Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	booking.Status = models.BookingStatusCancelled
	if err := database.DB.Save(&booking).Error; err != nil {
		return nil, err
	}

	publishSpots(booking.ClassID)
	go notifications.SendEmail(
		booking.User.FullName,
		booking.User.Email,
		"Your Booking Was Cancelled",
		fmt.Sprintf("<h1>Booking Cancelled</h1><p>Your seat in <b>%s</b> has been released. You can re-book any time while spots remain.</p>", booking.Class.Title),
	)
	return &booking, nil
}

func GetUserBookings(userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := database.DB.
		Preload("Class.Instructor").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

func GetClassBookings(classID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := database.DB.
		Preload("User").
		Where("class_id = ?", classID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

// UpdateBookingStatus applies an unconditional status transition. There is no
// ownership check here: the route in front of it is admin-only, and the
// completion sweep calls it directly.
func UpdateBookingStatus(bookingID uuid.UUID, status string) (*models.Booking, error) {
	var booking models.Booking
	if err := database.DB.Preload("Class.Instructor").Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	booking.Status = status
	if err := database.DB.Save(&booking).Error; err != nil {
		return nil, err
	}

	if status == models.BookingStatusCompleted {
		CheckAndGenerateCertificate(booking)
	}

	return &booking, nil
}

func publishSpots(classID uuid.UUID) {
	spots, err := GetAvailableSpots(classID)
	if err != nil {
		log.Printf("Failed to compute available spots for class %s: %v", classID, err)
		return
	}
	websocket.PublishSpots(classID, spots)
}
