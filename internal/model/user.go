package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a credential record in the user directory.
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordDigest string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role           Role      `json:"role" gorm:"size:50;not null;default:'viewer'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
