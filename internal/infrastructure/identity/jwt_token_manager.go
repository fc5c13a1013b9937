package identity

import (
	"fmt"
	"time"

	"booking_service/internal/domain/auth"
	"booking_service/internal/pkg/config"
	"booking_service/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "booking-service"

// jwtClaims are the claims embedded in issued access tokens.
type jwtClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type jwtTokenManager struct {
	secretKey   []byte
	tokenExpiry time.Duration
	logger      logger.Logger
}

// NewJwtTokenManager creates a TokenManager that signs HS256 tokens with the
// configured secret key.
func NewJwtTokenManager(settings *config.AuthSettings, logger logger.Logger) (auth.TokenManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth settings: %w", err)
	}

	return &jwtTokenManager{
		secretKey:   []byte(settings.SecretKey),
		tokenExpiry: time.Duration(settings.TokenExpiryMinutes) * time.Minute,
		logger:      logger,
	}, nil
}

// Issue creates a signed access token for the given user.
func (m *jwtTokenManager) Issue(username, role string) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenExpiry)),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

// Verify validates a token's signature and expiry and returns its claims.
func (m *jwtTokenManager) Verify(accessToken string) (*auth.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, auth.ErrInvalidToken
	}

	return &auth.TokenClaims{
		Username: claims.Subject,
		Role:     claims.Role,
	}, nil
}
