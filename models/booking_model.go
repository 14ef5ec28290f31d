package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking holds a student's seat in a class. Cancelling is a status change,
// not a delete: re-booking the same class reactivates the cancelled row.
type Booking struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClassID uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Status  string    `gorm:"size:20;not null;default:'confirmed'" json:"status"`

	Class Class `gorm:"foreignkey:ClassID" json:"class,omitempty"`
	User  User  `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
