package category

import (
	"context"

	"gorm.io/gorm"

	"recipehub/entities"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string) error

		CreateOccasion(ctx context.Context, occasion *entities.Occasion) error
		GetOccasionByID(ctx context.Context, id string) (*entities.Occasion, error)
		GetOccasionByName(ctx context.Context, name string) (*entities.Occasion, error)
		GetOccasions(ctx context.Context) ([]*entities.Occasion, error)
		UpdateOccasion(ctx context.Context, occasion *entities.Occasion) error
		DeleteOccasion(ctx context.Context, id string) error
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Category{}).Error
	})
}

func (r *categoryRepository) CreateOccasion(ctx context.Context, occasion *entities.Occasion) error {
	return r.db.WithContext(ctx).Create(occasion).Error
}

func (r *categoryRepository) GetOccasionByID(ctx context.Context, id string) (*entities.Occasion, error) {
	var occasion entities.Occasion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&occasion).Error; err != nil {
		return nil, err
	}
	return &occasion, nil
}

func (r *categoryRepository) GetOccasionByName(ctx context.Context, name string) (*entities.Occasion, error) {
	var occasion entities.Occasion
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&occasion).Error; err != nil {
		return nil, err
	}
	return &occasion, nil
}

func (r *categoryRepository) GetOccasions(ctx context.Context) ([]*entities.Occasion, error) {
	var occasions []*entities.Occasion
	if err := r.db.WithContext(ctx).Order("name asc").Find(&occasions).Error; err != nil {
		return nil, err
	}
	return occasions, nil
}

func (r *categoryRepository) UpdateOccasion(ctx context.Context, occasion *entities.Occasion) error {
	return r.db.WithContext(ctx).Save(occasion).Error
}

func (r *categoryRepository) DeleteOccasion(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{}).
			Where("occasion_id = ?", id).
			Update("occasion_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Occasion{}).Error
	})
}
