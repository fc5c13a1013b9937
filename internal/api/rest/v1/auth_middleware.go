package v1

import (
	"errors"
	"net/http"
	"strings"

	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// contextUserKey is the gin context key under which the authenticated user is stored.
const contextUserKey = "currentUser"

// BearerAuth returns a middleware that extracts the bearer token from the
// Authorization header, authenticates it and stores the resulting user in the
// request context. Requests without a valid token are rejected with 401,
// requests for deactivated accounts with 400.
func BearerAuth(authService auth.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		accessToken, found := strings.CutPrefix(header, "Bearer ")
		if !found || accessToken == "" {
			var errorResponse ErrorResponse
			errorResponse.Message = auth.ErrInvalidToken.Error()
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		user, err := authService.Authenticate(ctx, accessToken)
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, auth.ErrInactiveUser) {
				status = http.StatusBadRequest
			}
			var errorResponse ErrorResponse
			errorResponse.Message = err.Error()
			ctx.AbortWithStatusJSON(status, errorResponse)
			return
		}

		ctx.Set(contextUserKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user stored by BearerAuth, or nil when
// the request did not pass through the middleware.
func CurrentUser(ctx *gin.Context) *users.User {
	value, exists := ctx.Get(contextUserKey)
	if !exists {
		return nil
	}

	user, ok := value.(*users.User)
	if !ok {
		return nil
	}
	return user
}
