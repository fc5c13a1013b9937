package app

import (
	"context"
	"errors"
	"fmt"

	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/users"
	"booking_service/internal/pkg/logger"
)

// authService implements the AuthService interface for credential and token
// based authentication
type authService struct {
	userRepo     users.UserRepository
	hasher       auth.PasswordHasher
	tokenManager auth.TokenManager
	logger       logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	userRepo users.UserRepository,
	hasher auth.PasswordHasher,
	tokenManager auth.TokenManager,
	logger logger.Logger,
) (auth.AuthService, error) {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}, nil
}

// Login verifies the given credentials and returns a signed access token.
// Unknown users and wrong passwords yield the same error so the response
// does not leak which usernames exist.
func (s *authService) Login(ctx context.Context, username, password string) (*auth.Token, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, auth.ErrInactiveUser
	}

	accessToken, err := s.tokenManager.Issue(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("User ", user.Username, " logged in")
	return &auth.Token{
		AccessToken: accessToken,
		TokenType:   auth.TokenTypeBearer,
	}, nil
}

// Authenticate verifies an access token and returns the active user it
// belongs to.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*users.User, error) {
	claims, err := s.tokenManager.Verify(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("%w", err)
	}

	if !user.IsActive {
		return nil, auth.ErrInactiveUser
	}

	return user, nil
}
