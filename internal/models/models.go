package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/jobtrackr/jobtrackr/internal/vocab"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`

	// Empty for accounts that only sign in with Google.
	PasswordHash string `json:"-"`
	// Google subject id, set on first Google sign-in.
	GoogleID string `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Application is one tracked job application. OwnerID scopes every read and
// write; Status and Source are always vocabulary members once a record has
// passed through the service layer.
type Application struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	OwnerID string `gorm:"type:uuid;not null;index:idx_applications_owner_applied" json:"owner_id"`

	Company   string       `gorm:"not null" json:"company"`
	Position  string       `gorm:"not null" json:"position"`
	AppliedAt Date         `gorm:"not null;index:idx_applications_owner_applied" json:"applied_at"`
	Status    vocab.Status `gorm:"not null;default:'waiting'" json:"status"`
	Source    vocab.Source `gorm:"not null;default:'lainnya'" json:"source"`
	Notes     string       `gorm:"type:text" json:"notes"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
