package event

import (
	"context"

	"gorm.io/gorm"

	"recipehub/entities"
)

type (
	EventRepository interface {
		CreateEvent(ctx context.Context, event *entities.Event) error
		GetEventByID(ctx context.Context, id string) (*entities.Event, error)
		GetEvents(ctx context.Context, page, limit int) ([]*entities.Event, int64, error)
		UpdateEvent(ctx context.Context, event *entities.Event) error
		DeleteEvent(ctx context.Context, id string) error
	}

	eventRepository struct {
		db *gorm.DB
	}
)

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetEventByID(ctx context.Context, id string) (*entities.Event, error) {
	var event entities.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetEvents(ctx context.Context, page, limit int) ([]*entities.Event, int64, error) {
	var events []*entities.Event
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Event{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Order("start_date asc").
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, count, nil
}

func (r *eventRepository) UpdateEvent(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) DeleteEvent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Event{}).Error
}
