//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/users"
	"booking_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	RegisterTestUser(t, services, "johndoe", users.RoleUser)

	token, err := services.AuthService.Login(context.Background(), "johndoe", "secretpassword123")
	require.NoError(t, err)

	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, auth.TokenTypeBearer, token.TokenType)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	RegisterTestUser(t, services, "johndoe", users.RoleUser)

	_, err := services.AuthService.Login(context.Background(), "johndoe", "not-the-password")
	assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.AuthService.Login(context.Background(), "ghost", "secretpassword123")
	assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	isActive := false
	_, err := services.UserService.UpdateByID(context.Background(), user.ID, &users.UpdateUser{
		IsActive: &isActive,
	})
	require.NoError(t, err)

	_, err = services.AuthService.Login(context.Background(), "johndoe", "secretpassword123")
	assert.True(t, errors.Is(err, auth.ErrInactiveUser))
}

func TestAuthService_Authenticate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	registered := RegisterTestUser(t, services, "admin", users.RoleAdmin)

	token, err := services.AuthService.Login(context.Background(), "admin", "secretpassword123")
	require.NoError(t, err)

	user, err := services.AuthService.Authenticate(context.Background(), token.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, users.RoleAdmin, user.Role)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.AuthService.Authenticate(context.Background(), "not-a-token")
	assert.True(t, errors.Is(err, auth.ErrInvalidToken))
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	token, err := services.AuthService.Login(context.Background(), "johndoe", "secretpassword123")
	require.NoError(t, err)

	require.NoError(t, services.UserService.DeleteByID(context.Background(), user.ID))

	_, err = services.AuthService.Authenticate(context.Background(), token.AccessToken)
	assert.True(t, errors.Is(err, auth.ErrInvalidToken))
}
