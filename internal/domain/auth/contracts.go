package auth

import (
	"context"

	"booking_service/internal/domain/users"
)

// AuthService defines methods for authenticating users.
type AuthService interface {
	// Login verifies the given credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (*Token, error)

	// Authenticate verifies an access token and returns the active user it
	// belongs to.
	Authenticate(ctx context.Context, accessToken string) (*users.User, error)
}

// TokenManager defines methods for issuing and verifying access tokens.
type TokenManager interface {
	// Issue creates a signed access token for the given user.
	Issue(username, role string) (string, error)

	// Verify validates a token's signature and expiry and returns its claims.
	Verify(accessToken string) (*TokenClaims, error)
}

// PasswordHasher defines methods for hashing and checking passwords.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	Compare(hash, password string) error
}
