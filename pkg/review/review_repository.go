package review

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipehub/entities"
)

type (
	ReviewRepository interface {
		UpsertReview(ctx context.Context, review *entities.Review) error
		GetReviewByID(ctx context.Context, id string) (*entities.Review, error)
		GetReviewsByRecipe(ctx context.Context, recipeID string) ([]entities.Review, error)
		GetRatingsByRecipe(ctx context.Context, recipeID string) ([]int, error)
		DeleteReview(ctx context.Context, id string) error
		RecipeExists(ctx context.Context, recipeID string) (bool, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// UpsertReview inserts the review; on a (user_id, recipe_id) conflict the
// existing row's rating and comment are updated in place.
func (r *reviewRepository) UpsertReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
		}).
		Create(review).Error
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetReviewsByRecipe(ctx context.Context, recipeID string) ([]entities.Review, error) {
	var reviews []entities.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetRatingsByRecipe(ctx context.Context, recipeID string) ([]int, error) {
	var ratings []int
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("recipe_id = ?", recipeID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Review{}).Error
}

func (r *reviewRepository) RecipeExists(ctx context.Context, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
