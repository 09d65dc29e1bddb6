package recipe

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipehub/domain"
	"recipehub/entities"
	"recipehub/internal/utils/storage"
	"recipehub/pkg/review"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, req domain.SearchRecipesRequest, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID, viewerID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, recipeID, userID, role string) error

		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) error
		UnsaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) error
		GetSavedRecipes(ctx context.Context, page, limit int, userID string) ([]domain.RecipeResponse, int64, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		reviewRepository review.ReviewRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, reviewRepository review.ReviewRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		reviewRepository: reviewRepository,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            req.Name,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
	}

	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.RecipeDetailResponse{}, domain.ErrParseUUID
		}
		recipe.CategoryID = &categoryUUID
	}
	if req.OccasionID != "" {
		occasionUUID, err := uuid.Parse(req.OccasionID)
		if err != nil {
			return domain.RecipeDetailResponse{}, domain.ErrParseUUID
		}
		recipe.OccasionID = &occasionUUID
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	// A fresh recipe has no persisted images, so the sync reduces to
	// uploading and inserting the new ones.
	if len(req.Images) > 0 {
		if err := s.syncImages(ctx, recipe, nil, req.Images); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.SearchRecipesRequest, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, req, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res, err := s.buildRecipeResponse(ctx, recipe, viewerID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, res)
	}

	return result, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID, viewerID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	ratings := make([]int, 0, len(recipe.Reviews))
	reviews := make([]domain.ReviewResponse, 0, len(recipe.Reviews))
	for _, rev := range recipe.Reviews {
		ratings = append(ratings, rev.Rating)
		reviewRes := domain.ReviewResponse{
			ID:        rev.ID.String(),
			RecipeID:  rev.RecipeID.String(),
			UserID:    rev.UserID.String(),
			Rating:    rev.Rating,
			Comment:   rev.Comment,
			CreatedAt: rev.CreatedAt,
		}
		if rev.User != nil {
			reviewRes.UserName = rev.User.Name
		}
		reviews = append(reviews, reviewRes)
	}

	isSaved := false
	if viewerID != "" {
		isSaved, _ = s.recipeRepository.IsRecipeSaved(ctx, viewerID, recipeID)
	}

	res := toRecipeResponse(recipe, review.MeanRating(ratings), len(ratings), isSaved)

	return domain.RecipeDetailResponse{
		RecipeResponse: res,
		Ingredients:    recipe.Ingredients,
		Instructions:   recipe.Instructions,
		Reviews:        reviews,
	}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	if recipe.UserID.String() != userID {
		return domain.RecipeDetailResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	// Kept URLs must come from the recipe's own pre-edit image set.
	snapshot := make(map[string]bool, len(recipe.Images))
	for _, img := range recipe.Images {
		snapshot[img.ImageURL] = true
	}
	for _, url := range req.KeptImages {
		if !snapshot[url] {
			return domain.RecipeDetailResponse{}, domain.ErrKeptImageNotOwned
		}
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.Ingredients != "" {
		recipe.Ingredients = req.Ingredients
	}
	if req.Instructions != "" {
		recipe.Instructions = req.Instructions
	}
	if req.PrepTimeMinutes > 0 {
		recipe.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.CookTimeMinutes > 0 {
		recipe.CookTimeMinutes = req.CookTimeMinutes
	}
	if req.Servings > 0 {
		recipe.Servings = req.Servings
	}
	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.RecipeDetailResponse{}, domain.ErrParseUUID
		}
		recipe.CategoryID = &categoryUUID
	}
	if req.OccasionID != "" {
		occasionUUID, err := uuid.Parse(req.OccasionID)
		if err != nil {
			return domain.RecipeDetailResponse{}, domain.ErrParseUUID
		}
		recipe.OccasionID = &occasionUUID
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if err := s.syncImages(ctx, recipe, req.KeptImages, req.NewImages); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID, userID)
}

// DeleteRecipe cascades: image blobs are deleted best-effort, rows
// (images, saves, reviews, recipe) in one transaction.
func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID, userID, role string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedRecipeAccess
	}

	for _, img := range recipe.Images {
		objectKey := s.s3.GetObjectKeyFromLink(img.ImageURL)
		if objectKey == "" {
			continue
		}
		if err := s.s3.DeleteFile(objectKey); err != nil {
			log.Printf("failed to delete image blob %s: %v", objectKey, err)
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.SaveRecipe(ctx, userID, req.RecipeID)
}

func (s *recipeService) UnsaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.UnsaveRecipe(ctx, userID, req.RecipeID)
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, page, limit int, userID string) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetSavedRecipes(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		ratings, err := s.reviewRepository.GetRatingsByRecipe(ctx, recipe.ID.String())
		if err != nil {
			return nil, 0, err
		}
		result = append(result, toRecipeResponse(recipe, review.MeanRating(ratings), len(ratings), true))
	}

	return result, count, nil
}

func (s *recipeService) buildRecipeResponse(ctx context.Context, recipe *entities.Recipe, viewerID string) (domain.RecipeResponse, error) {
	ratings, err := s.reviewRepository.GetRatingsByRecipe(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	isSaved := false
	if viewerID != "" {
		isSaved, _ = s.recipeRepository.IsRecipeSaved(ctx, viewerID, recipe.ID.String())
	}

	return toRecipeResponse(recipe, review.MeanRating(ratings), len(ratings), isSaved), nil
}

func toRecipeResponse(recipe *entities.Recipe, averageRating float64, reviewCount int, isSaved bool) domain.RecipeResponse {
	imageURLs := make([]string, 0, len(recipe.Images))
	for _, img := range recipe.Images {
		imageURLs = append(imageURLs, img.ImageURL)
	}

	res := domain.RecipeResponse{
		ID:              recipe.ID.String(),
		UserID:          recipe.UserID.String(),
		Name:            recipe.Name,
		Description:     recipe.Description,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		ImageURLs:       imageURLs,
		AverageRating:   averageRating,
		ReviewCount:     reviewCount,
		IsSaved:         isSaved,
		CreatedAt:       recipe.CreatedAt,
	}
	if recipe.User != nil {
		res.AuthorName = recipe.User.Name
	}
	if recipe.CategoryID != nil {
		res.CategoryID = recipe.CategoryID.String()
	}
	if recipe.OccasionID != nil {
		res.OccasionID = recipe.OccasionID.String()
	}
	return res
}
