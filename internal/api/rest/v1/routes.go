package v1

import (
	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/bookings"
	"booking_service/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	userService users.UserService,
	bookingService bookings.BookingService,
	authService auth.AuthService) {

	v1 := r.Group(BasePath) // lookup in version file

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	bookingHandler := NewBookingHandler(bookingService)

	// Public routes
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/users", userHandler.Register)

	// Everything below requires a valid bearer token
	authenticated := v1.Group("", BearerAuth(authService))

	authenticated.POST("/auth/logout", authHandler.Logout)

	// Users Routes
	authenticated.GET("/users", userHandler.List)
	authenticated.GET("/users/:id", userHandler.GetByID)
	authenticated.PUT("/users/:id", userHandler.UpdateByID)
	authenticated.DELETE("/users/:id", userHandler.DeleteByID)

	// Bookings Routes
	authenticated.POST("/bookings", bookingHandler.Create)
	authenticated.GET("/bookings", bookingHandler.List)
	authenticated.GET("/bookings/all", bookingHandler.ListAll)
	authenticated.GET("/bookings/user/:userId", bookingHandler.ListByUserID)
	authenticated.GET("/bookings/:id", bookingHandler.GetByID)
	authenticated.PUT("/bookings/:id", bookingHandler.UpdateByID)
	authenticated.DELETE("/bookings/:id", bookingHandler.DeleteByID)
}
