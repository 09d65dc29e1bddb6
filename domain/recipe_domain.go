package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessSaveRecipe       = "recipe saved successfully"
	MessageSuccessUnsaveRecipe     = "recipe removed from saved"
	MessageSuccessGetSavedRecipes  = "success get saved recipes"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUnsaveRecipe    = "failed to remove saved recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrKeptImageNotOwned        = errors.New("kept image does not belong to recipe")
	ErrImageUploadFailed        = errors.New("image upload failed")
)

type (
	CreateRecipeRequest struct {
		Name            string                  `json:"name" form:"name" validate:"required"`
		Description     string                  `json:"description" form:"description" validate:"omitempty"`
		Ingredients     string                  `json:"ingredients" form:"ingredients" validate:"required"`
		Instructions    string                  `json:"instructions" form:"instructions" validate:"required"`
		PrepTimeMinutes int                     `json:"prep_time_minutes" form:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int                     `json:"cook_time_minutes" form:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int                     `json:"servings" form:"servings" validate:"omitempty,min=1"`
		CategoryID      string                  `json:"category_id" form:"category_id" validate:"omitempty,uuid"`
		OccasionID      string                  `json:"occasion_id" form:"occasion_id" validate:"omitempty,uuid"`
		Images          []*multipart.FileHeader `json:"-" form:"-"`
	}

	// UpdateRecipeRequest carries explicit two-list image bookkeeping:
	// KeptImages holds the URLs of already-persisted images the user kept,
	// NewImages the freshly selected files. Anything persisted but not kept
	// is removed during the sync.
	UpdateRecipeRequest struct {
		Name            string                  `json:"name" form:"name" validate:"omitempty"`
		Description     string                  `json:"description" form:"description" validate:"omitempty"`
		Ingredients     string                  `json:"ingredients" form:"ingredients" validate:"omitempty"`
		Instructions    string                  `json:"instructions" form:"instructions" validate:"omitempty"`
		PrepTimeMinutes int                     `json:"prep_time_minutes" form:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int                     `json:"cook_time_minutes" form:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int                     `json:"servings" form:"servings" validate:"omitempty,min=1"`
		CategoryID      string                  `json:"category_id" form:"category_id" validate:"omitempty,uuid"`
		OccasionID      string                  `json:"occasion_id" form:"occasion_id" validate:"omitempty,uuid"`
		KeptImages      []string                `json:"kept_images" form:"kept_images" validate:"omitempty,dive,url"`
		NewImages       []*multipart.FileHeader `json:"-" form:"-"`
	}

	SearchRecipesRequest struct {
		Query      string `json:"query" validate:"omitempty"`
		CategoryID string `json:"category_id" validate:"omitempty,uuid"`
		OccasionID string `json:"occasion_id" validate:"omitempty,uuid"`
	}

	SaveRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		AuthorName      string    `json:"author_name,omitempty"`
		Name            string    `json:"name"`
		Description     string    `json:"description"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		CategoryID      string    `json:"category_id,omitempty"`
		OccasionID      string    `json:"occasion_id,omitempty"`
		ImageURLs       []string  `json:"image_urls"`
		AverageRating   float64   `json:"average_rating"`
		ReviewCount     int       `json:"review_count"`
		IsSaved         bool      `json:"is_saved"`
		CreatedAt       time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients  string           `json:"ingredients"`
		Instructions string           `json:"instructions"`
		Reviews      []ReviewResponse `json:"reviews"`
	}
)
