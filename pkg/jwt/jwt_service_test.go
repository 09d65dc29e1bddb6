package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipehub/domain"
)

func TestUserTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", domain.RoleAdmin)
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestUserTokenTampered(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", domain.RoleUser)
	_, _, err := service.GetUserIDByToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestMailTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenMail(map[string]any{"email": "alice@example.com"}, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateTokenMail(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestMailTokenExpired(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenMail(map[string]any{"email": "alice@example.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenMail(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
