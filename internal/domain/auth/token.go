package auth

import "errors"

// TokenTypeBearer is the token type reported in login responses.
const TokenTypeBearer = "bearer"

// Token is an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
}

// TokenClaims are the verified claims carried by an access token.
type TokenClaims struct {
	Username string
	Role     string
}

var (
	// ErrInvalidCredentials is returned when the username or password is wrong.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInactiveUser is returned when the account is deactivated.
	ErrInactiveUser = errors.New("inactive user")
	// ErrInvalidToken is returned when a token fails verification.
	ErrInvalidToken = errors.New("could not validate credentials")
)
