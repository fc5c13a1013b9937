//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/bookings"
	"booking_service/internal/domain/users"
	"booking_service/internal/infrastructure/identity"
	"booking_service/internal/infrastructure/persistence"
	"booking_service/internal/pkg/config"
	"booking_service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

const testSecretKey = "integration-test-secret"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	UserService    users.UserService
	BookingService bookings.BookingService
	AuthService    auth.AuthService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	hasher := identity.NewBcryptPasswordHasher()

	authSettings := &config.AuthSettings{
		SecretKey:          testSecretKey,
		TokenExpiryMinutes: 30,
	}
	tokenManager, err := identity.NewJwtTokenManager(authSettings, logger)
	require.NoError(t, err, "Failed to create token manager")

	userService, err := NewUserService(dbContext.UserRepo, hasher, logger)
	require.NoError(t, err, "Failed to create user service")

	bookingService, err := NewBookingService(dbContext.BookingRepo, dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create booking service")

	authService, err := NewAuthService(dbContext.UserRepo, hasher, tokenManager, logger)
	require.NoError(t, err, "Failed to create auth service")

	return &TestServices{
		UserService:    userService,
		BookingService: bookingService,
		AuthService:    authService,
		DBContext:      dbContext,
	}
}

// RegisterTestUser registers a user through the user service
func RegisterTestUser(t *testing.T, services *TestServices, username, role string) *users.User {
	t.Helper()

	user, err := services.UserService.Register(context.Background(), &users.RegisterUser{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test User",
		Role:     role,
		Password: "secretpassword123",
	})
	require.NoError(t, err, "Failed to register test user")

	return user
}
