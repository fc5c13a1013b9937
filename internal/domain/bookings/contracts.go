package bookings

import (
	"context"

	"booking_service/internal/domain/users"
)

// BookingService defines methods for managing bookings. Every operation
// receives the authenticated actor so role-based access rules can be applied:
// admins operate on any booking, regular users only on their own.
type BookingService interface {
	// Create creates a booking owned by the acting user.
	Create(ctx context.Context, actor *users.User, input *CreateBooking) (*Booking, error)

	// List retrieves bookings visible to the actor: all bookings for admins,
	// own bookings for regular users.
	List(ctx context.Context, actor *users.User, query *BookingQuery) ([]*Booking, error)

	// ListWithUsers retrieves all bookings together with their owning users.
	// Restricted to admins.
	ListWithUsers(ctx context.Context, actor *users.User, query *BookingQuery) ([]*BookingWithUser, error)

	// ListByUserID retrieves the bookings of a specific user. Restricted to admins.
	ListByUserID(ctx context.Context, actor *users.User, userID string, query *BookingQuery) ([]*Booking, error)

	// GetByID retrieves a booking by ID, subject to the actor's access rights.
	GetByID(ctx context.Context, actor *users.User, bookingID string) (*Booking, error)

	// UpdateByID applies a partial update to a booking, subject to the actor's
	// access rights, and returns the updated Booking.
	UpdateByID(ctx context.Context, actor *users.User, bookingID string, input *UpdateBooking) (*Booking, error)

	// DeleteByID deletes a booking by ID, subject to the actor's access rights.
	DeleteByID(ctx context.Context, actor *users.User, bookingID string) error
}

// BookingRepository defines the interface for booking persistence operations
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	List(ctx context.Context, query *BookingQuery) ([]*Booking, error)
	ListWithUsers(ctx context.Context, query *BookingQuery) ([]*BookingWithUser, error)
	GetByID(ctx context.Context, bookingID string) (*Booking, error)
	UpdateByID(ctx context.Context, booking *Booking) error
	DeleteByID(ctx context.Context, bookingID string) error
}
