package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCategories  = "success get categories"
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"
	MessageSuccessGetOccasions   = "success get occasions"
	MessageSuccessCreateOccasion = "occasion created successfully"
	MessageSuccessUpdateOccasion = "occasion updated successfully"
	MessageSuccessDeleteOccasion = "occasion deleted successfully"

	MessageFailedGetCategories  = "failed to get categories"
	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageFailedGetOccasions   = "failed to get occasions"
	MessageFailedCreateOccasion = "failed to create occasion"
	MessageFailedUpdateOccasion = "failed to update occasion"
	MessageFailedDeleteOccasion = "failed to delete occasion"

	ErrCategoryNotFound      = errors.New("category not found")
	ErrOccasionNotFound      = errors.New("occasion not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrOccasionAlreadyExists = errors.New("occasion already exists")
)

type (
	CreateCategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateCategoryRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
	}

	CategoryResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	CreateOccasionRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateOccasionRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
	}

	OccasionResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
