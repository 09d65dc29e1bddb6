package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipehub/domain"
	"recipehub/internal/api/presenters"
	"recipehub/pkg/event"
)

type (
	EventHandler interface {
		CreateEvent(c *fiber.Ctx) error
		GetEvents(c *fiber.Ctx) error
		GetEventByID(c *fiber.Ctx) error
		UpdateEvent(c *fiber.Ctx) error
		DeleteEvent(c *fiber.Ctx) error
	}

	eventHandler struct {
		eventService event.EventService
		validator    *validator.Validate
	}
)

func NewEventHandler(eventService event.EventService, validator *validator.Validate) EventHandler {
	return &eventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *eventHandler) CreateEvent(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)
	req := new(domain.CreateEventRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEvent, err)
	}

	res, err := h.eventService.CreateEvent(c.Context(), *req, adminID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEvent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateEvent)
}

func (h *eventHandler) GetEvents(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	events, count, err := h.eventService.GetEvents(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEvents, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"events": events,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetEvents)
}

func (h *eventHandler) GetEventByID(c *fiber.Ctx) error {
	eventID := c.Params("id")

	res, err := h.eventService.GetEventByID(c.Context(), eventID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrEventNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetEvents, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEvents)
}

func (h *eventHandler) UpdateEvent(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)
	eventID := c.Params("id")
	req := new(domain.UpdateEventRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEvent, err)
	}

	res, err := h.eventService.UpdateEvent(c.Context(), eventID, *req, adminID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrEventNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateEvent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateEvent)
}

func (h *eventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID := c.Params("id")

	if err := h.eventService.DeleteEvent(c.Context(), eventID); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrEventNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteEvent, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEvent)
}
