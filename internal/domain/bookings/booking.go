package bookings

import (
	"errors"
	"fmt"
	"time"

	"booking_service/internal/domain/users"

	"github.com/go-playground/validator/v10"
)

// Booking status constants
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking entity
type Booking struct {
	ID              string    `validate:"required,uuid4"`
	UserID          string    `validate:"required,uuid4"`
	BookingDate     string    `validate:"required,min=1,max=50"`
	Status          string    `validate:"required,oneof=pending confirmed cancelled"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated *time.Time
}

// Validate for validating Booking struct
func (b *Booking) Validate() error {
	validate := validator.New()

	err := validate.Struct(b)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// BookingWithUser pairs a booking with the account that owns it.
type BookingWithUser struct {
	Booking Booking
	User    users.User
}

// CreateBooking carries the input for creating a booking.
type CreateBooking struct {
	BookingDate string `validate:"required,min=1,max=50"`
	Status      string `validate:"omitempty,oneof=pending confirmed cancelled"`
}

// Validate for validating CreateBooking struct
func (c *CreateBooking) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// UpdateBooking carries a partial update; nil fields are left unchanged.
type UpdateBooking struct {
	BookingDate *string `validate:"omitempty,min=1,max=50"`
	Status      *string `validate:"omitempty,oneof=pending confirmed cancelled"`
}

// Validate for validating UpdateBooking struct
func (u *UpdateBooking) Validate() error {
	validate := validator.New()

	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// BookingQuery defines filter and pagination options for listing bookings
type BookingQuery struct {
	UserID    string `validate:"omitempty,uuid4"`
	Status    string `validate:"omitempty,oneof=pending confirmed cancelled"`
	Limit     int    `validate:"omitempty,min=1,max=1000"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=booking_date status date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewBookingQuery creates a query with default pagination.
func NewBookingQuery() *BookingQuery {
	return &BookingQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating BookingQuery struct
func (q *BookingQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}
