package app

import (
	"context"
	"fmt"
	"time"

	"booking_service/internal/domain/bookings"
	"booking_service/internal/domain/users"
	"booking_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// bookingService implements the BookingService interface with role-based
// access rules: admins operate on any booking, regular users only on their own.
type bookingService struct {
	bookingRepo bookings.BookingRepository
	userRepo    users.UserRepository
	logger      logger.Logger
}

// NewBookingService creates a new bookingService instance
func NewBookingService(
	bookingRepo bookings.BookingRepository,
	userRepo users.UserRepository,
	logger logger.Logger,
) (bookings.BookingService, error) {
	return &bookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}, nil
}

// Create creates a booking owned by the acting user.
func (s *bookingService) Create(ctx context.Context, actor *users.User, input *bookings.CreateBooking) (*bookings.Booking, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = bookings.StatusPending
	}

	booking := &bookings.Booking{
		ID:              uuid.New().String(),
		UserID:          actor.ID,
		BookingDate:     input.BookingDate,
		Status:          status,
		DateTimeCreated: time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("User ", actor.Username, " created booking ", booking.ID)
	return booking, nil
}

// List retrieves bookings visible to the actor: all bookings for admins,
// own bookings for regular users.
func (s *bookingService) List(ctx context.Context, actor *users.User, query *bookings.BookingQuery) ([]*bookings.Booking, error) {
	if !actor.IsAdmin() {
		query.UserID = actor.ID
	}

	bookingList, err := s.bookingRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bookingList, nil
}

// ListWithUsers retrieves all bookings together with their owning users.
// Restricted to admins.
func (s *bookingService) ListWithUsers(ctx context.Context, actor *users.User, query *bookings.BookingQuery) ([]*bookings.BookingWithUser, error) {
	if !actor.IsAdmin() {
		return nil, bookings.ErrAdminOnly
	}

	bookingList, err := s.bookingRepo.ListWithUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bookingList, nil
}

// ListByUserID retrieves the bookings of a specific user. Restricted to admins.
func (s *bookingService) ListByUserID(ctx context.Context, actor *users.User, userID string, query *bookings.BookingQuery) ([]*bookings.Booking, error) {
	if !actor.IsAdmin() {
		return nil, bookings.ErrAdminOnly
	}

	// Resolve first so a missing user surfaces as not found
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	query.UserID = userID
	bookingList, err := s.bookingRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bookingList, nil
}

// GetByID retrieves a booking by ID, subject to the actor's access rights.
func (s *bookingService) GetByID(ctx context.Context, actor *users.User, bookingID string) (*bookings.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.checkAccess(actor, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// UpdateByID applies a partial update to a booking, subject to the actor's
// access rights, and returns the updated Booking.
func (s *bookingService) UpdateByID(ctx context.Context, actor *users.User, bookingID string, input *bookings.UpdateBooking) (*bookings.Booking, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.checkAccess(actor, booking); err != nil {
		return nil, err
	}

	if input.BookingDate != nil {
		booking.BookingDate = *input.BookingDate
	}
	if input.Status != nil {
		booking.Status = *input.Status
	}

	now := time.Now()
	booking.DateTimeUpdated = &now

	if err := s.bookingRepo.UpdateByID(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("User ", actor.Username, " updated booking ", booking.ID)
	return booking, nil
}

// DeleteByID deletes a booking by ID, subject to the actor's access rights.
func (s *bookingService) DeleteByID(ctx context.Context, actor *users.User, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.checkAccess(actor, booking); err != nil {
		return err
	}

	if err := s.bookingRepo.DeleteByID(ctx, bookingID); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("User ", actor.Username, " deleted booking ", bookingID)
	return nil
}

func (s *bookingService) checkAccess(actor *users.User, booking *bookings.Booking) error {
	if actor.IsAdmin() || booking.UserID == actor.ID {
		return nil
	}
	return bookings.ErrAccessDenied
}
