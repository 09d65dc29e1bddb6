package category

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipehub/domain"
	"recipehub/entities"
)

func newTestService(t *testing.T) (CategoryService, *gorm.DB) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Category{},
		&entities.Occasion{},
		&entities.Recipe{},
	))
	return NewCategoryService(NewCategoryRepository(db)), db
}

func TestCategoryCRUD(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateCategory(context.Background(), domain.CreateCategoryRequest{
		Name:        "Dessert",
		Description: "sweet things",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dessert", created.Name)

	_, err = service.CreateCategory(context.Background(), domain.CreateCategoryRequest{
		Name: "Dessert",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryAlreadyExists)

	updated, err := service.UpdateCategory(context.Background(), created.ID, domain.UpdateCategoryRequest{
		Name: "Desserts",
	})
	require.NoError(t, err)
	assert.Equal(t, "Desserts", updated.Name)

	list, err := service.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, service.DeleteCategory(context.Background(), created.ID))
	list, err = service.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteCategoryDetachesRecipes(t *testing.T) {
	service, db := newTestService(t)

	created, err := service.CreateCategory(context.Background(), domain.CreateCategoryRequest{
		Name: "Dinner",
	})
	require.NoError(t, err)

	categoryID := uuid.MustParse(created.ID)
	recipe := entities.Recipe{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Name:         "Roast",
		Ingredients:  "meat",
		Instructions: "roast it",
		CategoryID:   &categoryID,
	}
	require.NoError(t, db.Create(&recipe).Error)

	require.NoError(t, service.DeleteCategory(context.Background(), created.ID))

	// the recipe survives with its category cleared
	var reloaded entities.Recipe
	require.NoError(t, db.Where("id = ?", recipe.ID).First(&reloaded).Error)
	assert.Nil(t, reloaded.CategoryID)
}

func TestOccasionCRUD(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateOccasion(context.Background(), domain.CreateOccasionRequest{
		Name: "Eid",
	})
	require.NoError(t, err)

	_, err = service.CreateOccasion(context.Background(), domain.CreateOccasionRequest{
		Name: "Eid",
	})
	assert.ErrorIs(t, err, domain.ErrOccasionAlreadyExists)

	_, err = service.UpdateOccasion(context.Background(), uuid.New().String(), domain.UpdateOccasionRequest{
		Name: "Ramadan",
	})
	assert.ErrorIs(t, err, domain.ErrOccasionNotFound)

	require.NoError(t, service.DeleteOccasion(context.Background(), created.ID))
	list, err := service.GetOccasions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
