package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipehub/domain"
	"recipehub/entities"
	"recipehub/internal/utils"
	"recipehub/internal/utils/mailing"
	"recipehub/internal/utils/storage"
	"recipehub/pkg/jwt"
	"recipehub/pkg/recipe"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error
		UpdatePassword(ctx context.Context, req domain.UpdatePasswordRequest, userID string) error
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, email string) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error

		GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error)
		DeleteUser(ctx context.Context, id string) error
	}

	userService struct {
		userRepository   UserRepository
		recipeRepository recipe.RecipeRepository
		jwtService       jwt.JWTService
		s3               storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, recipeRepository recipe.RecipeRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository:   userRepository,
		recipeRepository: recipeRepository,
		jwtService:       jwtService,
		s3:               s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	if err := s.SendVerificationEmail(ctx, user.Email); err != nil {
		log.Printf("failed to send verification email to %s: %v", user.Email, err)
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsNotMatched
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsNotMatched
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		AboutMe:   user.AboutMe,
		ImageURL:  user.ImageURL,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.AboutMe != "" {
		user.AboutMe = req.AboutMe
	}

	if req.Avatar != nil {
		fileName := fmt.Sprintf("avatar-%s", user.ID.String())
		var objectKey string
		var uploadErr error

		if user.ImageURL != "" {
			existingKey := s.s3.GetObjectKeyFromLink(user.ImageURL)
			if existingKey != "" {
				objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Avatar, storage.AllowImage...)
			} else {
				objectKey, uploadErr = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
			}
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
		}

		if uploadErr != nil {
			return uploadErr
		}
		user.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) UpdatePassword(ctx context.Context, req domain.UpdatePasswordRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return domain.ErrPasswordNotMatched
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenMail(map[string]any{"email": user.Email}, 24*time.Hour)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please verify your email by clicking <a href=%q>here</a>.</p>",
		user.Name, link,
	)

	return mailing.SendMail(user.Email, "Verify your email", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenMail(token)
	if err != nil {
		return err
	}

	email, _ := claims["email"].(string)
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.Verified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenMail(map[string]any{"email": user.Email}, time.Hour)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Reset your password by clicking <a href=%q>here</a>. The link expires in one hour.</p>",
		user.Name, link,
	)

	return mailing.SendMail(user.Email, "Reset your password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenMail(req.Token)
	if err != nil {
		return err
	}

	email, _ := claims["email"].(string)
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, domain.UserResponse{
			ID:        user.ID.String(),
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			ImageURL:  user.ImageURL,
			Verified:  user.Verified,
			CreatedAt: user.CreatedAt,
		})
	}

	return result, count, nil
}

// DeleteUser removes the user together with their recipes; recipe image
// and avatar blobs are deleted best-effort.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, id)
	if err != nil {
		return err
	}
	for _, rec := range recipes {
		for _, img := range rec.Images {
			objectKey := s.s3.GetObjectKeyFromLink(img.ImageURL)
			if objectKey == "" {
				continue
			}
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Printf("failed to delete image blob %s: %v", objectKey, err)
			}
		}
		if err := s.recipeRepository.DeleteRecipe(ctx, rec.ID.String()); err != nil {
			return err
		}
	}

	if user.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(user.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Printf("failed to delete avatar blob %s: %v", objectKey, err)
			}
		}
	}

	return s.userRepository.DeleteUser(ctx, id)
}
