package entities

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AdminID     uuid.UUID  `gorm:"index" json:"admin_id"`
	Title       string     `json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   time.Time  `gorm:"type:timestamp" json:"start_date"`
	EndDate     *time.Time `gorm:"type:timestamp" json:"end_date,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`

	Admin *User `gorm:"foreignKey:AdminID"`
	Timestamp
}
