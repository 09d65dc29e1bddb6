package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login success"
	MessageSuccessGetMe            = "success get current user"
	MessageSuccessUpdateUser       = "user updated successfully"
	MessageSuccessUpdatePassword   = "password updated successfully"
	MessageSuccessSendVerification = "verification email sent"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessForgotPassword   = "password reset email sent"
	MessageSuccessResetPassword    = "password reset successfully"
	MessageSuccessGetUsers         = "users retrieved successfully"
	MessageSuccessDeleteUser       = "user deleted successfully"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetMe            = "failed to get current user"
	MessageFailedUpdateUser       = "failed to update user"
	MessageFailedUpdatePassword   = "failed to update password"
	MessageFailedSendVerification = "failed to send verification email"
	MessageFailedVerifyEmail      = "failed to verify email"
	MessageFailedForgotPassword   = "failed to send password reset email"
	MessageFailedResetPassword    = "failed to reset password"
	MessageFailedGetUsers         = "failed to retrieve users"
	MessageFailedDeleteUser       = "failed to delete user"

	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrCredentialsNotMatched = errors.New("email or password not matched")
	ErrPasswordNotMatched    = errors.New("old password not matched")
	ErrEmailNotVerified      = errors.New("email not verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	MeResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		AboutMe   string    `json:"about_me,omitempty"`
		ImageURL  string    `json:"image_url,omitempty"`
		Verified  bool      `json:"verified"`
		CreatedAt time.Time `json:"created_at"`
	}

	UpdateUserRequest struct {
		Name    string                `json:"name" form:"name" validate:"omitempty"`
		AboutMe string                `json:"about_me" form:"about_me" validate:"omitempty"`
		Avatar  *multipart.FileHeader `json:"avatar" form:"avatar" validate:"omitempty"`
	}

	UpdatePasswordRequest struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	SendVerificationRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		ImageURL  string    `json:"image_url,omitempty"`
		Verified  bool      `json:"verified"`
		CreatedAt time.Time `json:"created_at"`
	}
)
