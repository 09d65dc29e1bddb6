package user

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipehub/domain"
	"recipehub/entities"
	"recipehub/pkg/jwt"
	"recipehub/pkg/recipe"
)

const fakePublicPrefix = "https://test-bucket.s3.ap-southeast-1.amazonaws.com/"

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]bool
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string]bool)}
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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

func newTestService(t *testing.T) (UserService, *fakeS3, *gorm.DB) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.RecipeImage{},
		&entities.SavedRecipe{},
		&entities.Review{},
	))

	s3 := newFakeS3()
	service := NewUserService(
		NewUserRepository(db),
		recipe.NewRecipeRepository(db),
		jwt.NewJWTService(),
		s3,
	)
	return service, s3, db
}

func TestRegisterAndLogin(t *testing.T) {
	service, _, db := newTestService(t)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Name)

	// password must be stored hashed
	var stored entities.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&stored).Error)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.Equal(t, domain.RoleUser, stored.Role)

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, domain.RoleUser, login.Role)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsNotMatched)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _, _ := newTestService(t)

	req := domain.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUpdatePassword(t *testing.T) {
	service, _, _ := newTestService(t)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	err = service.UpdatePassword(context.Background(), domain.UpdatePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "anothersecret",
	}, res.ID)
	assert.ErrorIs(t, err, domain.ErrPasswordNotMatched)

	err = service.UpdatePassword(context.Background(), domain.UpdatePasswordRequest{
		OldPassword: "supersecret",
		NewPassword: "anothersecret",
	}, res.ID)
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "anothersecret",
	})
	assert.NoError(t, err)
}

func TestDeleteUserCascadesRecipes(t *testing.T) {
	service, s3, db := newTestService(t)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	userID := uuid.MustParse(res.ID)

	recipeID := uuid.New()
	require.NoError(t, db.Create(&entities.Recipe{
		ID:           recipeID,
		UserID:       userID,
		Name:         "Pancakes",
		Ingredients:  "flour",
		Instructions: "fry",
	}).Error)

	imageKey := "recipes/" + res.ID + "/" + recipeID.String() + "/photo.jpg"
	s3.objects[imageKey] = true
	require.NoError(t, db.Create(&entities.RecipeImage{
		ID:       uuid.New(),
		RecipeID: recipeID,
		ImageURL: fakePublicPrefix + imageKey,
	}).Error)

	require.NoError(t, service.DeleteUser(context.Background(), res.ID))

	assert.Equal(t, 0, s3.objectCount())
	for _, model := range []any{&entities.User{}, &entities.Recipe{}, &entities.RecipeImage{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	}
}

func TestVerifyEmail(t *testing.T) {
	service, _, db := newTestService(t)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := jwt.NewJWTService().GenerateTokenMail(map[string]any{"email": "alice@example.com"}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, service.VerifyEmail(context.Background(), token))

	var stored entities.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&stored).Error)
	assert.True(t, stored.Verified)
}

func TestMeUnknownUser(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Me(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
