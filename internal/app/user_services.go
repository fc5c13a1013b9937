package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/users"
	"booking_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// userService implements the UserService interface for managing user accounts
type userService struct {
	userRepo users.UserRepository
	hasher   auth.PasswordHasher
	logger   logger.Logger
}

// NewUserService creates a new userService instance
func NewUserService(
	userRepo users.UserRepository,
	hasher auth.PasswordHasher,
	logger logger.Logger,
) (users.UserService, error) {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// Register creates a new user account with a hashed password.
// It returns the created User and any error encountered during registration.
func (s *userService) Register(ctx context.Context, input *users.RegisterUser) (*users.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkUsernameAvailable(ctx, input.Username); err != nil {
		return nil, err
	}
	if err := s.checkEmailAvailable(ctx, input.Email); err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	role := input.Role
	if role == "" {
		role = users.RoleUser
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	user := &users.User{
		ID:              uuid.New().String(),
		Username:        input.Username,
		Email:           input.Email,
		FullName:        input.FullName,
		Role:            role,
		IsActive:        isActive,
		PasswordHash:    passwordHash,
		DateTimeCreated: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Registered user ", user.Username)
	return user, nil
}

// List retrieves users considering pagination and sorting options.
func (s *userService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	userList, err := s.userRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return userList, nil
}

// GetByID retrieves a user by its unique ID.
func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return user, nil
}

// UpdateByID applies a partial update to a user and returns the updated User.
func (s *userService) UpdateByID(ctx context.Context, userID string, input *users.UpdateUser) (*users.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if input.Username != nil && *input.Username != user.Username {
		if err := s.checkUsernameAvailable(ctx, *input.Username); err != nil {
			return nil, err
		}
		user.Username = *input.Username
	}

	if input.Email != nil && *input.Email != user.Email {
		if err := s.checkEmailAvailable(ctx, *input.Email); err != nil {
			return nil, err
		}
		user.Email = *input.Email
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if input.Password != nil {
		passwordHash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		user.PasswordHash = passwordHash
	}

	now := time.Now()
	user.DateTimeUpdated = &now

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Updated user ", user.Username)
	return user, nil
}

// DeleteByID deletes a user by ID.
func (s *userService) DeleteByID(ctx context.Context, userID string) error {
	// Resolve first so a missing user surfaces as not found
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *userService) checkUsernameAvailable(ctx context.Context, username string) error {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return users.ErrUsernameTaken
	}
	if !errors.Is(err, users.ErrUserNotFound) {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *userService) checkEmailAvailable(ctx context.Context, email string) error {
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return users.ErrEmailTaken
	}
	if !errors.Is(err, users.ErrUserNotFound) {
		return fmt.Errorf("%w", err)
	}
	return nil
}
