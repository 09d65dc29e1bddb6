package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_review_user_recipe" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_review_user_recipe" json:"user_id"`
	Rating   int       `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment  string    `gorm:"type:text" json:"comment,omitempty"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
