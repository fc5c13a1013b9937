package identity

import (
	"fmt"

	"booking_service/internal/domain/auth"

	"golang.org/x/crypto/bcrypt"
)

type bcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a PasswordHasher backed by bcrypt with the
// default cost.
func NewBcryptPasswordHasher() auth.PasswordHasher {
	return &bcryptPasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a storable hash from a plaintext password.
func (h *bcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks a plaintext password against a stored hash.
func (h *bcryptPasswordHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("%w", auth.ErrInvalidCredentials)
	}
	return nil
}
