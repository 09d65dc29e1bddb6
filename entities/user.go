package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `gorm:"default:User" json:"role"` // "User", "Admin"
	AboutMe  string    `gorm:"type:text" json:"about_me,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	Verified bool      `json:"verified"`

	Timestamp
}
