//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockUserService := new(MockUserService)
	mockBookingService := new(MockBookingService)
	mockAuthService := new(MockAuthService)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	mockUserService.On("Register", mock.Anything, mock.Anything).Return(nil, nil)
	mockAuthService.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	SetupRoutes(r, mockUserService, mockBookingService, mockAuthService)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/bs/users"},
		{"POST", "/api/v1/bs/auth/login"},
		{"GET", "/api/v1/bs/users"},
		{"GET", "/api/v1/bs/bookings"},
		{"GET", "/api/v1/bs/bookings/all"},
		{"GET", "/api/v1/bs/bookings/user/some-id"},
		{"GET", "/api/v1/bs/bookings/some-id"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

// TestSetupRoutes_ProtectedRoutesRequireToken verifies that the bearer
// middleware guards everything below the public routes.
func TestSetupRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	mockUserService := new(MockUserService)
	mockBookingService := new(MockBookingService)
	mockAuthService := new(MockAuthService)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	SetupRoutes(r, mockUserService, mockBookingService, mockAuthService)

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/api/v1/bs/users"},
		{"GET", "/api/v1/bs/users/some-id"},
		{"POST", "/api/v1/bs/bookings"},
		{"GET", "/api/v1/bs/bookings"},
		{"GET", "/api/v1/bs/bookings/all"},
		{"DELETE", "/api/v1/bs/bookings/some-id"},
		{"POST", "/api/v1/bs/auth/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "Route should require a bearer token")
		})
	}
}
