package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipehub/domain"
	"recipehub/internal/api/presenters"
	"recipehub/pkg/recipe"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		UnsaveRecipe(c *fiber.Ctx) error
		GetSavedRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if form, err := c.MultipartForm(); err == nil {
		req.Images = form.File["images"]
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "12"))
	if err != nil || limit < 1 {
		limit = 12
	}

	req := domain.SearchRecipesRequest{
		Query:      c.Query("q"),
		CategoryID: c.Query("category_id"),
		OccasionID: c.Query("occasion_id"),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	viewerID, _ := c.Locals("user_id").(string)

	recipes, count, err := h.recipeService.GetRecipes(c.Context(), req, page, limit, viewerID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	viewerID, _ := c.Locals("user_id").(string)

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID, viewerID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrRecipeNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if form, err := c.MultipartForm(); err == nil {
		req.NewImages = form.File["new_images"]
		if kept, ok := form.Value["kept_images"]; ok {
			req.KeptImages = kept
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		switch err {
		case domain.ErrRecipeNotFound:
			status = fiber.StatusNotFound
		case domain.ErrUnauthorizedRecipeAccess:
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID, userID, role); err != nil {
		status := fiber.StatusBadRequest
		switch err {
		case domain.ErrRecipeNotFound:
			status = fiber.StatusNotFound
		case domain.ErrUnauthorizedRecipeAccess:
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := domain.SaveRecipeRequest{RecipeID: c.Params("id")}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	if err := h.recipeService.SaveRecipe(c.Context(), req, userID); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrRecipeNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) UnsaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := domain.SaveRecipeRequest{RecipeID: c.Params("id")}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveRecipe, err)
	}

	if err := h.recipeService.UnsaveRecipe(c.Context(), req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveRecipe)
}

func (h *recipeHandler) GetSavedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "12"))
	if err != nil || limit < 1 {
		limit = 12
	}

	recipes, count, err := h.recipeService.GetSavedRecipes(c.Context(), page, limit, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSavedRecipes)
}
