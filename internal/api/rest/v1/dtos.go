package v1

import (
	"fmt"
	"time"

	"booking_service/internal/domain/bookings"
	"booking_service/internal/domain/users"

	"github.com/go-playground/validator/v10"
)

// RegisterUserRequest is the payload for creating a new user account.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive *bool  `json:"is_active"`
	Password string `json:"password" validate:"required,min=8"`
}

// Validate for validating RegisterUserRequest struct
func (r *RegisterUserRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// UpdateUserRequest is the payload for partially updating a user. Absent
// fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// Validate for validating UpdateUserRequest struct
func (u *UpdateUserRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// LoginRequest is the payload for obtaining an access token.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (l *LoginRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	BookingDate string `json:"booking_date" validate:"required,min=1,max=50"`
	Status      string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// Validate for validating CreateBookingRequest struct
func (c *CreateBookingRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// UpdateBookingRequest is the payload for partially updating a booking.
// Absent fields are left unchanged.
type UpdateBookingRequest struct {
	BookingDate *string `json:"booking_date" validate:"omitempty,min=1,max=50"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// Validate for validating UpdateBookingRequest struct
func (u *UpdateBookingRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// UserResponse mirrors a user account. The password hash is never exposed.
type UserResponse struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name,omitempty"`
	Role            string     `json:"role"`
	IsActive        bool       `json:"is_active"`
	DateTimeCreated time.Time  `json:"date_time_created"`
	DateTimeUpdated *time.Time `json:"date_time_updated,omitempty"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// BookingResponse mirrors a booking.
type BookingResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	BookingDate     string     `json:"booking_date"`
	Status          string     `json:"status"`
	DateTimeCreated time.Time  `json:"date_time_created"`
	DateTimeUpdated *time.Time `json:"date_time_updated,omitempty"`
}

// BookingWithUserResponse mirrors a booking together with its owning user.
type BookingWithUserResponse struct {
	BookingResponse
	User UserResponse `json:"user"`
}

// ErrorResponse contains the error message of failed operations
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse contains the info message of succeeded operations
type InfoResponse struct {
	Message string `json:"message"`
}

func newUserResponse(user *users.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		FullName:        user.FullName,
		Role:            user.Role,
		IsActive:        user.IsActive,
		DateTimeCreated: user.DateTimeCreated,
		DateTimeUpdated: user.DateTimeUpdated,
	}
}

func newBookingResponse(booking *bookings.Booking) BookingResponse {
	return BookingResponse{
		ID:              booking.ID,
		UserID:          booking.UserID,
		BookingDate:     booking.BookingDate,
		Status:          booking.Status,
		DateTimeCreated: booking.DateTimeCreated,
		DateTimeUpdated: booking.DateTimeUpdated,
	}
}
