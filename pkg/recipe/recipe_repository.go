package recipe

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipehub/domain"
	"recipehub/entities"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, req domain.SearchRecipesRequest, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error

		GetRecipeImages(ctx context.Context, recipeID string) ([]entities.RecipeImage, error)
		AddRecipeImage(ctx context.Context, image *entities.RecipeImage) error
		DeleteRecipeImagesByURL(ctx context.Context, recipeID string, urls []string) error

		SaveRecipe(ctx context.Context, userID, recipeID string) error
		UnsaveRecipe(ctx context.Context, userID, recipeID string) error
		IsRecipeSaved(ctx context.Context, userID, recipeID string) (bool, error)
		GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// imageOrder keeps preloaded images in insertion order, kept originals
// before later uploads.
func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at asc")
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Images", imageOrder).
		Preload("User").
		Preload("Reviews").
		Preload("Reviews.User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, req domain.SearchRecipesRequest, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if req.Query != "" {
		pattern := "%" + req.Query + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(ingredients) LIKE LOWER(?)", pattern, pattern)
	}
	if req.CategoryID != "" {
		query = query.Where("category_id = ?", req.CategoryID)
	}
	if req.OccasionID != "" {
		query = query.Where("occasion_id = ?", req.OccasionID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Images", imageOrder).
		Preload("User").
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Images", imageOrder).
		Where("user_id = ?", userID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	// Associations are managed explicitly by the image sync.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(recipe).Error
}

// DeleteRecipe removes the recipe together with its image rows, saved
// entries and reviews. Blob cleanup is the service's concern.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.SavedRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) GetRecipeImages(ctx context.Context, recipeID string) ([]entities.RecipeImage, error) {
	var images []entities.RecipeImage
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at asc").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *recipeRepository) AddRecipeImage(ctx context.Context, image *entities.RecipeImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *recipeRepository) DeleteRecipeImagesByURL(ctx context.Context, recipeID string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND image_url IN ?", recipeID, urls).
		Delete(&entities.RecipeImage{}).Error
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	// Already saved is a no-op; the unique index backs this up under
	// concurrent saves.
	var existing entities.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userUUID, recipeUUID).
		First(&existing).Error; err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	saved := entities.SavedRecipe{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Create(&saved).Error
}

func (r *recipeRepository) UnsaveRecipe(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.SavedRecipe{}).Error
}

func (r *recipeRepository) IsRecipeSaved(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN saved_recipes ON recipes.id = saved_recipes.recipe_id").
		Where("saved_recipes.user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Images", imageOrder).
		Preload("User").
		Joins("JOIN saved_recipes ON recipes.id = saved_recipes.recipe_id").
		Where("saved_recipes.user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("saved_recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}
