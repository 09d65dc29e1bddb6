package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipehub/domain"
	"recipehub/internal/api/presenters"
	"recipehub/pkg/category"
)

type (
	CategoryHandler interface {
		CreateCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error

		CreateOccasion(c *fiber.Ctx) error
		GetOccasions(c *fiber.Ctx) error
		UpdateOccasion(c *fiber.Ctx) error
		DeleteOccasion(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.categoryService.CreateCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.categoryService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	req := new(domain.UpdateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	res, err := h.categoryService.UpdateCategory(c.Context(), categoryID, *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrCategoryNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	if err := h.categoryService.DeleteCategory(c.Context(), categoryID); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrCategoryNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *categoryHandler) CreateOccasion(c *fiber.Ctx) error {
	req := new(domain.CreateOccasionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOccasion, err)
	}

	res, err := h.categoryService.CreateOccasion(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOccasion, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOccasion)
}

func (h *categoryHandler) GetOccasions(c *fiber.Ctx) error {
	res, err := h.categoryService.GetOccasions(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOccasions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOccasions)
}

func (h *categoryHandler) UpdateOccasion(c *fiber.Ctx) error {
	occasionID := c.Params("id")
	req := new(domain.UpdateOccasionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOccasion, err)
	}

	res, err := h.categoryService.UpdateOccasion(c.Context(), occasionID, *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrOccasionNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateOccasion, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateOccasion)
}

func (h *categoryHandler) DeleteOccasion(c *fiber.Ctx) error {
	occasionID := c.Params("id")

	if err := h.categoryService.DeleteOccasion(c.Context(), occasionID); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrOccasionNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteOccasion, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteOccasion)
}
