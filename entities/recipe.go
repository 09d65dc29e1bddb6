package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `gorm:"index" json:"user_id"`
	Name            string     `json:"name"`
	Description     string     `gorm:"type:text" json:"description"`
	Ingredients     string     `gorm:"type:text" json:"ingredients"` // newline-delimited
	Instructions    string     `gorm:"type:text" json:"instructions"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Servings        int        `json:"servings"`
	CategoryID      *uuid.UUID `gorm:"type:uuid" json:"category_id,omitempty"`
	OccasionID      *uuid.UUID `gorm:"type:uuid" json:"occasion_id,omitempty"`

	User     *User         `gorm:"foreignKey:UserID"`
	Category *Category     `gorm:"foreignKey:CategoryID"`
	Occasion *Occasion     `gorm:"foreignKey:OccasionID"`
	Images   []RecipeImage `gorm:"foreignKey:RecipeID"`
	Reviews  []Review      `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type RecipeImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID  uuid.UUID `gorm:"index" json:"recipe_id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}

type SavedRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_saved_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_saved_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
