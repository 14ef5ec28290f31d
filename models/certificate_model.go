package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	InstructorID   uuid.UUID `gorm:"type:uuid;not null" json:"instructor_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	CompletionDate time.Time `json:"completion_date"`
	CertificateURL string    `gorm:"size:255;not null" json:"certificate_url"`

	Student    User `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Instructor User `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
