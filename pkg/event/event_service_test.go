package event

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipehub/domain"
	"recipehub/entities"
)

const fakePublicPrefix = "https://test-bucket.s3.ap-southeast-1.amazonaws.com/"

type fakeS3 struct {
	objects map[string]bool
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	key := strings.Trim(dir, "/") + "/" + fileName + ".jpg"
	f.objects[key] = true
	return key, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	f.objects[objectKey] = true
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	delete(f.objects, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return fakePublicPrefix + strings.TrimLeft(objectKey, "/")
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, fakePublicPrefix) {
		return ""
	}
	return strings.TrimPrefix(link, fakePublicPrefix)
}

func newTestService(t *testing.T) (EventService, *fakeS3, *gorm.DB) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Event{}))

	s3 := &fakeS3{objects: make(map[string]bool)}
	return NewEventService(NewEventRepository(db), s3), s3, db
}

func TestCreateEventDateValidation(t *testing.T) {
	service, _, _ := newTestService(t)
	adminID := uuid.New().String()

	_, err := service.CreateEvent(context.Background(), domain.CreateEventRequest{
		Title:     "Summer Cookoff",
		StartDate: "not-a-date",
	}, adminID)
	assert.ErrorIs(t, err, domain.ErrInvalidEventDate)

	// end date before start date is rejected
	_, err = service.CreateEvent(context.Background(), domain.CreateEventRequest{
		Title:     "Summer Cookoff",
		StartDate: "2026-07-10",
		EndDate:   "2026-07-01",
	}, adminID)
	assert.ErrorIs(t, err, domain.ErrInvalidEventDate)

	res, err := service.CreateEvent(context.Background(), domain.CreateEventRequest{
		Title:     "Summer Cookoff",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
	}, adminID)
	require.NoError(t, err)
	assert.Equal(t, "Summer Cookoff", res.Title)
	require.NotNil(t, res.EndDate)
}

func TestGetEventsOrderedByStartDate(t *testing.T) {
	service, _, _ := newTestService(t)
	adminID := uuid.New().String()

	_, err := service.CreateEvent(context.Background(), domain.CreateEventRequest{
		Title:     "Later",
		StartDate: "2026-09-01",
	}, adminID)
	require.NoError(t, err)
	_, err = service.CreateEvent(context.Background(), domain.CreateEventRequest{
		Title:     "Sooner",
		StartDate: "2026-08-01",
	}, adminID)
	require.NoError(t, err)

	events, total, err := service.GetEvents(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, events, 2)
	assert.Equal(t, "Sooner", events[0].Title)
	assert.Equal(t, "Later", events[1].Title)
}

func TestDeleteEventRemovesImageBlob(t *testing.T) {
	service, s3, db := newTestService(t)
	adminID := uuid.New()

	event := entities.Event{
		ID:      uuid.New(),
		AdminID: adminID,
		Title:   "Bake Night",
	}
	key := "events/event-" + event.ID.String() + ".jpg"
	s3.objects[key] = true
	event.ImageURL = fakePublicPrefix + key
	require.NoError(t, db.Create(&event).Error)

	require.NoError(t, service.DeleteEvent(context.Background(), event.ID.String()))
	assert.Empty(t, s3.objects)

	_, err := service.GetEventByID(context.Background(), event.ID.String())
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestUpdateEventRemoveImage(t *testing.T) {
	service, s3, db := newTestService(t)
	adminID := uuid.New()

	startDate, err := time.Parse("2006-01-02", "2026-07-01")
	require.NoError(t, err)
	event := entities.Event{
		ID:        uuid.New(),
		AdminID:   adminID,
		Title:     "Bake Night",
		StartDate: startDate,
	}
	key := "events/event-" + event.ID.String() + ".jpg"
	s3.objects[key] = true
	event.ImageURL = fakePublicPrefix + key
	require.NoError(t, db.Create(&event).Error)

	res, err := service.UpdateEvent(context.Background(), event.ID.String(), domain.UpdateEventRequest{
		RemoveImage: true,
	}, adminID.String())
	require.NoError(t, err)
	assert.Empty(t, res.ImageURL)
	assert.Empty(t, s3.objects)
}
