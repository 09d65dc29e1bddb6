package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipehub/domain"
	"recipehub/entities"
)

type (
	ReviewService interface {
		SubmitReview(ctx context.Context, req domain.SubmitReviewRequest, userID string) (domain.ReviewResponse, error)
		GetRecipeReviews(ctx context.Context, recipeID string) ([]domain.ReviewResponse, error)
		GetRecipeRating(ctx context.Context, recipeID string) (domain.RecipeRatingResponse, error)
		DeleteReview(ctx context.Context, reviewID, userID, role string) error
	}

	reviewService struct {
		reviewRepository ReviewRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository) ReviewService {
	return &reviewService{reviewRepository: reviewRepository}
}

func (s *reviewService) SubmitReview(ctx context.Context, req domain.SubmitReviewRequest, userID string) (domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ReviewResponse{}, domain.ErrInvalidRating
	}

	exists, err := s.reviewRepository.RecipeExists(ctx, req.RecipeID)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if !exists {
		return domain.ReviewResponse{}, domain.ErrRecipeNotFound
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	review := &entities.Review{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.reviewRepository.UpsertReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	return domain.ReviewResponse{
		ID:        review.ID.String(),
		RecipeID:  review.RecipeID.String(),
		UserID:    review.UserID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}

func (s *reviewService) GetRecipeReviews(ctx context.Context, recipeID string) ([]domain.ReviewResponse, error) {
	reviews, err := s.reviewRepository.GetReviewsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		res := domain.ReviewResponse{
			ID:        review.ID.String(),
			RecipeID:  review.RecipeID.String(),
			UserID:    review.UserID.String(),
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		}
		if review.User != nil {
			res.UserName = review.User.Name
		}
		result = append(result, res)
	}

	return result, nil
}

// GetRecipeRating recomputes the arithmetic mean on every call; zero
// reviews yield an average of 0.
func (s *reviewService) GetRecipeRating(ctx context.Context, recipeID string) (domain.RecipeRatingResponse, error) {
	ratings, err := s.reviewRepository.GetRatingsByRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeRatingResponse{}, err
	}

	return domain.RecipeRatingResponse{
		RecipeID:      recipeID,
		AverageRating: MeanRating(ratings),
		ReviewCount:   len(ratings),
	}, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, userID, role string) error {
	review, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	if review.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUserNotAllowed
	}

	return s.reviewRepository.DeleteReview(ctx, reviewID)
}

// MeanRating is the rating aggregator: sum/count, 0 for no ratings.
func MeanRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	return float64(sum) / float64(len(ratings))
}
