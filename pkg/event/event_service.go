package event

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipehub/domain"
	"recipehub/entities"
	"recipehub/internal/utils/storage"
)

type (
	EventService interface {
		CreateEvent(ctx context.Context, req domain.CreateEventRequest, adminID string) (domain.EventResponse, error)
		GetEvents(ctx context.Context, page, limit int) ([]domain.EventResponse, int64, error)
		GetEventByID(ctx context.Context, id string) (domain.EventResponse, error)
		UpdateEvent(ctx context.Context, id string, req domain.UpdateEventRequest, adminID string) (domain.EventResponse, error)
		DeleteEvent(ctx context.Context, id string) error
	}

	eventService struct {
		eventRepository EventRepository
		s3              storage.AwsS3
	}
)

func NewEventService(eventRepository EventRepository, s3 storage.AwsS3) EventService {
	return &eventService{
		eventRepository: eventRepository,
		s3:              s3,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req domain.CreateEventRequest, adminID string) (domain.EventResponse, error) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return domain.EventResponse{}, domain.ErrParseUUID
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return domain.EventResponse{}, domain.ErrInvalidEventDate
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return domain.EventResponse{}, domain.ErrInvalidEventDate
		}
		if parsed.Before(startDate) {
			return domain.EventResponse{}, domain.ErrInvalidEventDate
		}
		endDate = &parsed
	}

	event := &entities.Event{
		ID:          uuid.New(),
		AdminID:     adminUUID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("event-%s", event.ID.String()),
			req.Image,
			"events",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.EventResponse{}, err
		}
		event.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.eventRepository.CreateEvent(ctx, event); err != nil {
		return domain.EventResponse{}, err
	}

	return toEventResponse(event), nil
}

func (s *eventService) GetEvents(ctx context.Context, page, limit int) ([]domain.EventResponse, int64, error) {
	events, count, err := s.eventRepository.GetEvents(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.EventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, toEventResponse(event))
	}

	return result, count, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (domain.EventResponse, error) {
	event, err := s.eventRepository.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EventResponse{}, domain.ErrEventNotFound
		}
		return domain.EventResponse{}, err
	}

	return toEventResponse(event), nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, req domain.UpdateEventRequest, adminID string) (domain.EventResponse, error) {
	event, err := s.eventRepository.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EventResponse{}, domain.ErrEventNotFound
		}
		return domain.EventResponse{}, err
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return domain.EventResponse{}, domain.ErrInvalidEventDate
		}
		event.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return domain.EventResponse{}, domain.ErrInvalidEventDate
		}
		if endDate.Before(event.StartDate) {
			return domain.EventResponse{}, domain.ErrInvalidEventDate
		}
		event.EndDate = &endDate
	}

	if req.RemoveImage && event.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(event.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Printf("failed to delete event image blob %s: %v", objectKey, err)
			}
		}
		event.ImageURL = ""
	}

	if req.Image != nil {
		fileName := fmt.Sprintf("event-%s", event.ID.String())
		var objectKey string
		var uploadErr error

		if event.ImageURL != "" {
			existingKey := s.s3.GetObjectKeyFromLink(event.ImageURL)
			if existingKey != "" {
				objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
			} else {
				objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "events", storage.AllowImage...)
			}
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "events", storage.AllowImage...)
		}

		if uploadErr != nil {
			return domain.EventResponse{}, uploadErr
		}
		event.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.eventRepository.UpdateEvent(ctx, event); err != nil {
		return domain.EventResponse{}, err
	}

	return toEventResponse(event), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	event, err := s.eventRepository.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEventNotFound
		}
		return err
	}

	if event.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(event.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Printf("failed to delete event image blob %s: %v", objectKey, err)
			}
		}
	}

	return s.eventRepository.DeleteEvent(ctx, id)
}

func toEventResponse(event *entities.Event) domain.EventResponse {
	return domain.EventResponse{
		ID:          event.ID.String(),
		AdminID:     event.AdminID.String(),
		Title:       event.Title,
		Description: event.Description,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		ImageURL:    event.ImageURL,
		CreatedAt:   event.CreatedAt,
	}
}
