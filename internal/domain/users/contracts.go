package users

import (
	"context"
)

// UserService defines methods for managing user accounts.
type UserService interface {
	// Register creates a new user account with a hashed password.
	// It returns the created User and any error encountered during registration.
	Register(ctx context.Context, input *RegisterUser) (*User, error)

	// List retrieves users considering pagination and sorting options.
	// It returns a slice of User and any error encountered during the retrieval process.
	List(ctx context.Context, query *UserQuery) ([]*User, error)

	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, userID string) (*User, error)

	// UpdateByID applies a partial update to a user and returns the updated User.
	UpdateByID(ctx context.Context, userID string, input *UpdateUser) (*User, error)

	// DeleteByID deletes a user by ID.
	DeleteByID(ctx context.Context, userID string) error
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID string) error
}
