package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipehub/domain"
	"recipehub/internal/api/presenters"
	"recipehub/pkg/review"
)

type (
	ReviewHandler interface {
		SubmitReview(c *fiber.Ctx) error
		GetRecipeReviews(c *fiber.Ctx) error
		GetRecipeRating(c *fiber.Ctx) error
		DeleteReview(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) SubmitReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.RecipeID = c.Params("id")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitReview, err)
	}

	res, err := h.reviewService.SubmitReview(c.Context(), *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrRecipeNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedSubmitReview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitReview)
}

func (h *reviewHandler) GetRecipeReviews(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.reviewService.GetRecipeReviews(c.Context(), recipeID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrRecipeNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetRecipeRating(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.reviewService.GetRecipeRating(c.Context(), recipeID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrRecipeNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetRating, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRating)
}

func (h *reviewHandler) DeleteReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	reviewID := c.Params("id")

	if err := h.reviewService.DeleteReview(c.Context(), reviewID, userID, role); err != nil {
		status := fiber.StatusBadRequest
		switch err {
		case domain.ErrReviewNotFound:
			status = fiber.StatusNotFound
		case domain.ErrUserNotAllowed:
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReview)
}
