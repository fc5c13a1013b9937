//go:build unit
// +build unit

package v1

import (
	"context"

	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/bookings"
	"booking_service/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, input *users.RegisterUser) (*users.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) UpdateByID(ctx context.Context, userID string, input *users.UpdateUser) (*users.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, actor *users.User, input *bookings.CreateBooking) (*bookings.Booking, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, actor *users.User, query *bookings.BookingQuery) ([]*bookings.Booking, error) {
	args := m.Called(ctx, actor, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) ListWithUsers(ctx context.Context, actor *users.User, query *bookings.BookingQuery) ([]*bookings.BookingWithUser, error) {
	args := m.Called(ctx, actor, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.BookingWithUser), args.Error(1)
}

func (m *MockBookingService) ListByUserID(ctx context.Context, actor *users.User, userID string, query *bookings.BookingQuery) ([]*bookings.Booking, error) {
	args := m.Called(ctx, actor, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) GetByID(ctx context.Context, actor *users.User, bookingID string) (*bookings.Booking, error) {
	args := m.Called(ctx, actor, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) UpdateByID(ctx context.Context, actor *users.User, bookingID string, input *bookings.UpdateBooking) (*bookings.Booking, error) {
	args := m.Called(ctx, actor, bookingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) DeleteByID(ctx context.Context, actor *users.User, bookingID string) error {
	args := m.Called(ctx, actor, bookingID)
	return args.Error(0)
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*auth.Token, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, accessToken string) (*users.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}
