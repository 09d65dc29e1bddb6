package recipe

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipehub/domain"
	"recipehub/entities"
	"recipehub/pkg/review"
)

const fakePublicPrefix = "https://test-bucket.s3.ap-southeast-1.amazonaws.com/"

// fakeS3 keeps uploaded object keys in memory. Files whose name appears in
// failNames fail to upload, which drives the compensation paths.
type fakeS3 struct {
	mu        sync.Mutex
	objects   map[string]bool
	failNames map[string]bool
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		objects:   make(map[string]bool),
		failNames: make(map[string]bool),
	}
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNames[file.Filename] {
		return "", fmt.Errorf("upload refused for %s", file.Filename)
	}
	key := strings.Trim(dir, "/") + "/" + fileName + ".jpg"
	f.objects[key] = true
	return key, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectKey] = true
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
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

func (f *fakeS3) objectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

func (f *fakeS3) hasObject(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.objects[key]
}

func newTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Occasion{},
		&entities.Recipe{},
		&entities.RecipeImage{},
		&entities.SavedRecipe{},
		&entities.Review{},
	))
	return db
}

func newTestService(t *testing.T) (RecipeService, *fakeS3, *gorm.DB) {
	db := newTestDB(t)
	s3 := newFakeS3()
	service := NewRecipeService(NewRecipeRepository(db), review.NewReviewRepository(db), s3)
	return service, s3, db
}

func makeFileHeader(t *testing.T, name string) *multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("images", name)
	require.NoError(t, err)
	_, err = fw.Write([]byte("image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["images"][0]
}

func createTestUser(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	user := entities.User{
		ID:    uuid.New(),
		Name:  name,
		Email: name + "@example.com",
		Role:  domain.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func TestCreateRecipeUploadsImages(t *testing.T) {
	service, s3, db := newTestService(t)
	userID := createTestUser(t, db, "alice")

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Pancakes",
		Ingredients:  "flour\nmilk\neggs",
		Instructions: "mix and fry",
		Images: []*multipart.FileHeader{
			makeFileHeader(t, "front.jpg"),
			makeFileHeader(t, "side.jpg"),
		},
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "Pancakes", res.Name)
	assert.Len(t, res.ImageURLs, 2)
	assert.Equal(t, 2, s3.objectCount())

	var rows int64
	require.NoError(t, db.Model(&entities.RecipeImage{}).Count(&rows).Error)
	assert.Equal(t, int64(2), rows)
}

func TestUpdateRecipeSyncReplacesImages(t *testing.T) {
	service, s3, db := newTestService(t)
	userID := createTestUser(t, db, "alice")

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Ramen",
		Ingredients:  "noodles\nbroth",
		Instructions: "simmer",
		Images: []*multipart.FileHeader{
			makeFileHeader(t, "a.jpg"),
			makeFileHeader(t, "b.jpg"),
		},
	}, userID.String())
	require.NoError(t, err)
	require.Len(t, created.ImageURLs, 2)

	removed := created.ImageURLs[0]
	kept := created.ImageURLs[1]

	updated, err := service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{
		KeptImages: []string{kept},
		NewImages:  []*multipart.FileHeader{makeFileHeader(t, "c.jpg")},
	}, userID.String())
	require.NoError(t, err)

	require.Len(t, updated.ImageURLs, 2)
	assert.Equal(t, kept, updated.ImageURLs[0])
	assert.NotEqual(t, removed, updated.ImageURLs[1])

	// removed image is gone from both store and rows, kept survives
	assert.False(t, s3.hasObject(s3.GetObjectKeyFromLink(removed)))
	assert.True(t, s3.hasObject(s3.GetObjectKeyFromLink(kept)))
	assert.Equal(t, 2, s3.objectCount())

	var rows int64
	require.NoError(t, db.Model(&entities.RecipeImage{}).
		Where("recipe_id = ?", created.ID).Count(&rows).Error)
	assert.Equal(t, int64(2), rows)
}

func TestUpdateRecipeWithoutImageChangesIsNoOp(t *testing.T) {
	service, s3, db := newTestService(t)
	userID := createTestUser(t, db, "alice")

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Soup",
		Ingredients:  "water",
		Instructions: "boil",
		Images: []*multipart.FileHeader{
			makeFileHeader(t, "a.jpg"),
			makeFileHeader(t, "b.jpg"),
		},
	}, userID.String())
	require.NoError(t, err)

	var before []entities.RecipeImage
	require.NoError(t, db.Where("recipe_id = ?", created.ID).Order("created_at asc").Find(&before).Error)

	updated, err := service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{
		Name:       "Better Soup",
		KeptImages: created.ImageURLs,
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "Better Soup", updated.Name)
	assert.Equal(t, created.ImageURLs, updated.ImageURLs)
	assert.Equal(t, 2, s3.objectCount())

	// same rows, untouched
	var after []entities.RecipeImage
	require.NoError(t, db.Where("recipe_id = ?", created.ID).Order("created_at asc").Find(&after).Error)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}

func TestUpdateRecipeRejectsForeignKeptImage(t *testing.T) {
	service, _, db := newTestService(t)
	userID := createTestUser(t, db, "alice")

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Salad",
		Ingredients:  "greens",
		Instructions: "toss",
	}, userID.String())
	require.NoError(t, err)

	_, err = service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{
		KeptImages: []string{fakePublicPrefix + "recipes/other/stolen.jpg"},
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrKeptImageNotOwned)
}

func TestUpdateRecipeUploadFailureLeavesStateUntouched(t *testing.T) {
	service, s3, db := newTestService(t)
	userID := createTestUser(t, db, "alice")

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Curry",
		Ingredients:  "spices",
		Instructions: "cook",
		Images:       []*multipart.FileHeader{makeFileHeader(t, "a.jpg")},
	}, userID.String())
	require.NoError(t, err)
	require.Equal(t, 1, s3.objectCount())

	s3.failNames["bad.jpg"] = true

	_, err = service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{
		KeptImages: created.ImageURLs,
		NewImages: []*multipart.FileHeader{
			makeFileHeader(t, "ok.jpg"),
			makeFileHeader(t, "bad.jpg"),
		},
	}, userID.String())
	require.Error(t, err)

	// the batch failed: the blob that landed was deleted again and no
	// rows were added
	assert.Equal(t, 1, s3.objectCount())
	var rows int64
	require.NoError(t, db.Model(&entities.RecipeImage{}).
		Where("recipe_id = ?", created.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestUpdateRecipeOwnershipEnforced(t *testing.T) {
	service, _, db := newTestService(t)
	owner := createTestUser(t, db, "alice")
	intruder := createTestUser(t, db, "bob")

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Toast",
		Ingredients:  "bread",
		Instructions: "toast it",
	}, owner.String())
	require.NoError(t, err)

	_, err = service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{
		Name: "Hijacked",
	}, intruder.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
}

func TestDeleteRecipeCascades(t *testing.T) {
	service, s3, db := newTestService(t)
	owner := createTestUser(t, db, "alice")
	fan := createTestUser(t, db, "bob")

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Pizza",
		Ingredients:  "dough\ncheese",
		Instructions: "bake",
		Images:       []*multipart.FileHeader{makeFileHeader(t, "pie.jpg")},
	}, owner.String())
	require.NoError(t, err)

	require.NoError(t, service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{RecipeID: created.ID}, fan.String()))
	require.NoError(t, db.Create(&entities.Review{
		ID:       uuid.New(),
		RecipeID: uuid.MustParse(created.ID),
		UserID:   fan,
		Rating:   5,
	}).Error)

	require.NoError(t, service.DeleteRecipe(context.Background(), created.ID, owner.String(), domain.RoleUser))

	assert.Equal(t, 0, s3.objectCount())
	for _, model := range []any{&entities.Recipe{}, &entities.RecipeImage{}, &entities.SavedRecipe{}, &entities.Review{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	}
}

func TestDeleteRecipeAuthorization(t *testing.T) {
	service, _, db := newTestService(t)
	owner := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Stew",
		Ingredients:  "meat",
		Instructions: "stew it",
	}, owner.String())
	require.NoError(t, err)

	err = service.DeleteRecipe(context.Background(), created.ID, other.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	// admins may delete anyone's recipe
	require.NoError(t, service.DeleteRecipe(context.Background(), created.ID, other.String(), domain.RoleAdmin))
}

func TestSaveRecipeToggle(t *testing.T) {
	service, _, db := newTestService(t)
	owner := createTestUser(t, db, "alice")
	fan := createTestUser(t, db, "bob")

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Tacos",
		Ingredients:  "tortilla",
		Instructions: "fill",
	}, owner.String())
	require.NoError(t, err)

	req := domain.SaveRecipeRequest{RecipeID: created.ID}
	require.NoError(t, service.SaveRecipe(context.Background(), req, fan.String()))
	// saving again is a no-op, not a duplicate
	require.NoError(t, service.SaveRecipe(context.Background(), req, fan.String()))

	var count int64
	require.NoError(t, db.Model(&entities.SavedRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	detail, err := service.GetRecipeDetail(context.Background(), created.ID, fan.String())
	require.NoError(t, err)
	assert.True(t, detail.IsSaved)

	saved, total, err := service.GetSavedRecipes(context.Background(), 1, 10, fan.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, saved, 1)
	assert.True(t, saved[0].IsSaved)

	require.NoError(t, service.UnsaveRecipe(context.Background(), req, fan.String()))
	detail, err = service.GetRecipeDetail(context.Background(), created.ID, fan.String())
	require.NoError(t, err)
	assert.False(t, detail.IsSaved)
}

func TestSaveUnknownRecipe(t *testing.T) {
	service, _, db := newTestService(t)
	fan := createTestUser(t, db, "bob")

	err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{
		RecipeID: uuid.New().String(),
	}, fan.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipesSearch(t *testing.T) {
	service, _, db := newTestService(t)
	userID := createTestUser(t, db, "alice")

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Chocolate Cake",
		Ingredients:  "chocolate\nflour",
		Instructions: "bake",
	}, userID.String())
	require.NoError(t, err)
	_, err = service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Green Salad",
		Ingredients:  "lettuce",
		Instructions: "toss",
	}, userID.String())
	require.NoError(t, err)

	results, total, err := service.GetRecipes(context.Background(), domain.SearchRecipesRequest{
		Query: "CHOCO",
	}, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "Chocolate Cake", results[0].Name)

	// ingredient text is searched too
	results, _, err = service.GetRecipes(context.Background(), domain.SearchRecipesRequest{
		Query: "lettuce",
	}, 1, 10, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Green Salad", results[0].Name)
}

func TestGetRecipeDetailAggregatesRatings(t *testing.T) {
	service, _, db := newTestService(t)
	owner := createTestUser(t, db, "alice")
	fan := createTestUser(t, db, "bob")
	critic := createTestUser(t, db, "carol")

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Omelette",
		Ingredients:  "eggs",
		Instructions: "whisk and fry",
	}, owner.String())
	require.NoError(t, err)

	recipeUUID := uuid.MustParse(created.ID)
	require.NoError(t, db.Create(&entities.Review{ID: uuid.New(), RecipeID: recipeUUID, UserID: fan, Rating: 5}).Error)
	require.NoError(t, db.Create(&entities.Review{ID: uuid.New(), RecipeID: recipeUUID, UserID: critic, Rating: 2}).Error)

	detail, err := service.GetRecipeDetail(context.Background(), created.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, detail.ReviewCount)
	assert.InDelta(t, 3.5, detail.AverageRating, 0.001)
	assert.Len(t, detail.Reviews, 2)
}
