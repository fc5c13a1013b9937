package v1

import (
	"errors"
	"net/http"

	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/bookings"
	"booking_service/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// statusFromError maps domain sentinel errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, users.ErrUserNotFound), errors.Is(err, bookings.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, bookings.ErrAccessDenied), errors.Is(err, bookings.ErrAdminOnly):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, users.ErrUsernameTaken), errors.Is(err, users.ErrEmailTaken), errors.Is(err, auth.ErrInactiveUser):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = err.Error()
	ctx.AbortWithStatusJSON(statusFromError(err), errorResponse)
}
