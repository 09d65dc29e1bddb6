package category

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipehub/domain"
	"recipehub/entities"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string) error

		CreateOccasion(ctx context.Context, req domain.CreateOccasionRequest) (domain.OccasionResponse, error)
		GetOccasions(ctx context.Context) ([]domain.OccasionResponse, error)
		UpdateOccasion(ctx context.Context, id string, req domain.UpdateOccasionRequest) (domain.OccasionResponse, error)
		DeleteOccasion(ctx context.Context, id string) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	if _, err := s.categoryRepository.GetCategoryByName(ctx, req.Name); err == nil {
		return domain.CategoryResponse{}, domain.ErrCategoryAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CategoryResponse{}, err
	}

	category := &entities.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, toCategoryResponse(category))
	}
	return result, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	return s.categoryRepository.DeleteCategory(ctx, id)
}

func (s *categoryService) CreateOccasion(ctx context.Context, req domain.CreateOccasionRequest) (domain.OccasionResponse, error) {
	if _, err := s.categoryRepository.GetOccasionByName(ctx, req.Name); err == nil {
		return domain.OccasionResponse{}, domain.ErrOccasionAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.OccasionResponse{}, err
	}

	occasion := &entities.Occasion{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepository.CreateOccasion(ctx, occasion); err != nil {
		return domain.OccasionResponse{}, err
	}

	return toOccasionResponse(occasion), nil
}

func (s *categoryService) GetOccasions(ctx context.Context) ([]domain.OccasionResponse, error) {
	occasions, err := s.categoryRepository.GetOccasions(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.OccasionResponse, 0, len(occasions))
	for _, occasion := range occasions {
		result = append(result, toOccasionResponse(occasion))
	}
	return result, nil
}

func (s *categoryService) UpdateOccasion(ctx context.Context, id string, req domain.UpdateOccasionRequest) (domain.OccasionResponse, error) {
	occasion, err := s.categoryRepository.GetOccasionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OccasionResponse{}, domain.ErrOccasionNotFound
		}
		return domain.OccasionResponse{}, err
	}

	if req.Name != "" {
		occasion.Name = req.Name
	}
	if req.Description != "" {
		occasion.Description = req.Description
	}

	if err := s.categoryRepository.UpdateOccasion(ctx, occasion); err != nil {
		return domain.OccasionResponse{}, err
	}

	return toOccasionResponse(occasion), nil
}

func (s *categoryService) DeleteOccasion(ctx context.Context, id string) error {
	if _, err := s.categoryRepository.GetOccasionByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOccasionNotFound
		}
		return err
	}

	return s.categoryRepository.DeleteOccasion(ctx, id)
}

func toCategoryResponse(category *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}

func toOccasionResponse(occasion *entities.Occasion) domain.OccasionResponse {
	return domain.OccasionResponse{
		ID:          occasion.ID.String(),
		Name:        occasion.Name,
		Description: occasion.Description,
		CreatedAt:   occasion.CreatedAt,
	}
}
