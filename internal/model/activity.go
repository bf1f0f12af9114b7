package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity actions recorded by the platform.
const (
	ActionUpload = "upload"
	ActionView   = "view"
	ActionLogin  = "login"
	ActionSignup = "signup"
)

// Activity is a single entry in the access log.
type Activity struct {
	ID         uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:char(36);index;not null"`
	DocumentID *uuid.UUID `json:"document_id,omitempty" gorm:"type:char(36);index"`
	Action     string     `json:"action" gorm:"size:50;not null"`
	Details    string     `json:"details" gorm:"size:512"`
	CreatedAt  time.Time  `json:"created_at"`

	// Relations
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Document *Document `json:"document,omitempty" gorm:"foreignKey:DocumentID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
