package jobs

import (
	"log"
	"time"

	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/anyango5/cooking_class/services"
)

const bookingAutoCompleteAfter = 30 * 24 * time.Hour

// CompleteElapsedBookings marks long-past confirmed bookings as completed.
// Class schedules are free text, so "the class happened" is approximated by
// booking age rather than a timetable.
func CompleteElapsedBookings() {
	log.Println("Running job: CompleteElapsedBookings...")

	cutoff := time.Now().Add(-bookingAutoCompleteAfter)

	var elapsed []models.Booking
	err := database.DB.
		Where("status = ? AND created_at < ?", models.BookingStatusConfirmed, cutoff).
		Find(&elapsed).Error
	if err != nil {
		log.Printf("Error checking for elapsed bookings: %v", err)
		return
	}

	if len(elapsed) == 0 {
		return
	}

	for _, booking := range elapsed {
		if _, err := services.UpdateBookingStatus(booking.ID, models.BookingStatusCompleted); err != nil {
			log.Printf("Error completing booking %s: %v", booking.ID, err)
		}
	}

	log.Printf("Marked %d booking(s) as completed.", len(elapsed))
}
