package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetEvents   = "success get events"
	MessageSuccessCreateEvent = "event created successfully"
	MessageSuccessUpdateEvent = "event updated successfully"
	MessageSuccessDeleteEvent = "event deleted successfully"

	MessageFailedGetEvents   = "failed to get events"
	MessageFailedCreateEvent = "failed to create event"
	MessageFailedUpdateEvent = "failed to update event"
	MessageFailedDeleteEvent = "failed to delete event"

	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventDate = errors.New("invalid event date")
)

type (
	CreateEventRequest struct {
		Title       string                `json:"title" form:"title" validate:"required"`
		Description string                `json:"description" form:"description" validate:"omitempty"`
		StartDate   string                `json:"start_date" form:"start_date" validate:"required"`
		EndDate     string                `json:"end_date" form:"end_date" validate:"omitempty"`
		Image       *multipart.FileHeader `json:"-" form:"-"`
	}

	UpdateEventRequest struct {
		Title       string                `json:"title" form:"title" validate:"omitempty"`
		Description string                `json:"description" form:"description" validate:"omitempty"`
		StartDate   string                `json:"start_date" form:"start_date" validate:"omitempty"`
		EndDate     string                `json:"end_date" form:"end_date" validate:"omitempty"`
		RemoveImage bool                  `json:"remove_image" form:"remove_image"`
		Image       *multipart.FileHeader `json:"-" form:"-"`
	}

	EventResponse struct {
		ID          string     `json:"id"`
		AdminID     string     `json:"admin_id"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		StartDate   time.Time  `json:"start_date"`
		EndDate     *time.Time `json:"end_date,omitempty"`
		ImageURL    string     `json:"image_url,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}
)
