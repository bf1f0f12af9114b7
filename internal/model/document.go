package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document represents an uploaded file in the content library.
type Document struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null;index"`
	Description  string    `json:"description" gorm:"size:1024"`
	FileName     string    `json:"file_name" gorm:"size:512;not null"`
	ContentType  string    `json:"content_type" gorm:"size:255"`
	Size         int64     `json:"size"`
	UploadedByID uuid.UUID `json:"uploaded_by_id" gorm:"type:char(36);index;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	UploadedBy *User `json:"uploaded_by,omitempty" gorm:"foreignKey:UploadedByID"`
}

// BeforeCreate sets UUID before creating the record.
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
