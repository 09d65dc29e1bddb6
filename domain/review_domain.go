package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitReview = "review submitted successfully"
	MessageSuccessGetReviews   = "success get reviews"
	MessageSuccessDeleteReview = "review deleted successfully"
	MessageSuccessGetRating    = "success get recipe rating"

	MessageFailedSubmitReview = "failed to submit review"
	MessageFailedGetReviews   = "failed to get reviews"
	MessageFailedDeleteReview = "failed to delete review"
	MessageFailedGetRating    = "failed to get recipe rating"

	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)

type (
	SubmitReviewRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Comment  string `json:"comment" validate:"omitempty"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		UserID    string    `json:"user_id"`
		UserName  string    `json:"user_name,omitempty"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	RecipeRatingResponse struct {
		RecipeID      string  `json:"recipe_id"`
		AverageRating float64 `json:"average_rating"`
		ReviewCount   int     `json:"review_count"`
	}
)
