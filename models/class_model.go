package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class is a bookable cooking-class listing. Rating is a cached average of
// the class's reviews and is only ever written by the review service.
type Class struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Location     string    `gorm:"size:255;not null" json:"location"`
	InstructorID uuid.UUID `gorm:"type:uuid;not null;index" json:"instructor_id"`
	Price        float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	MaxStudents  int       `gorm:"not null" json:"max_students"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	Duration     string    `gorm:"size:100" json:"duration"`
	Difficulty   string    `gorm:"size:50" json:"difficulty"`
	CuisineType  string    `gorm:"size:100" json:"cuisine_type"`

	Menu                  *string `gorm:"type:text" json:"menu"`
	Schedule              *string `gorm:"type:text" json:"schedule"`
	Highlights            *string `gorm:"type:text" json:"highlights"`
	AdditionalInformation *string `gorm:"type:text" json:"additional_information"`

	Instructor User      `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`
	Reviews    []Review  `gorm:"foreignkey:ClassID" json:"reviews,omitempty"`
	Bookings   []Booking `gorm:"foreignkey:ClassID" json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
