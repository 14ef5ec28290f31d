package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a student's rated feedback on a class. Author is a snapshot of
// the reviewer's display name at write time, not a live reference.
type Review struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClassID uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Content string    `gorm:"type:text;not null" json:"content"`
	Rating  int       `gorm:"not null" json:"rating"`
	Author  string    `gorm:"size:255;not null" json:"author"`

	Class Class `gorm:"foreignkey:ClassID" json:"class,omitempty"`
	User  User  `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
