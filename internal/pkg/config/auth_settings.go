package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultTokenExpiryMinutes is the access token lifetime used when
// ACCESS_TOKEN_EXPIRE_MINUTES is not set.
const DefaultTokenExpiryMinutes = 30

// AuthSettings holds configuration settings for issuing and verifying
// access tokens
type AuthSettings struct {
	SecretKey          string `validate:"required"`
	TokenExpiryMinutes int    `validate:"required,min=1,max=1440"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}
