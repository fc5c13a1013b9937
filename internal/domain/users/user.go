package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// User role constants
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User entity
type User struct {
	ID              string `validate:"required,uuid4"`
	Username        string `validate:"required,min=3,max=50"`
	Email           string `validate:"required,email"`
	FullName        string `validate:"omitempty,max=100"`
	Role            string `validate:"required,oneof=admin user"`
	IsActive        bool
	PasswordHash    string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated *time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
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

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterUser carries the input for creating a new account.
type RegisterUser struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	FullName string `validate:"omitempty,max=100"`
	Role     string `validate:"omitempty,oneof=admin user"`
	IsActive *bool
	Password string `validate:"required,min=8"`
}

// Validate for validating RegisterUser struct
func (r *RegisterUser) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// UpdateUser carries a partial update; nil fields are left unchanged.
type UpdateUser struct {
	Username *string `validate:"omitempty,min=3,max=50"`
	Email    *string `validate:"omitempty,email"`
	FullName *string `validate:"omitempty,max=100"`
	Role     *string `validate:"omitempty,oneof=admin user"`
	IsActive *bool
	Password *string `validate:"omitempty,min=8"`
}

// Validate for validating UpdateUser struct
func (u *UpdateUser) Validate() error {
	validate := validator.New()

	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// UserQuery defines filter and pagination options for listing users
type UserQuery struct {
	Limit     int    `validate:"omitempty,min=1,max=1000"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=username email date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewUserQuery creates a query with default pagination.
func NewUserQuery() *UserQuery {
	return &UserQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}
