package v1

import (
	"fmt"
	"net/http"

	"booking_service/internal/domain/auth"
	"booking_service/internal/domain/bookings"
	"booking_service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler defines the interface for handling booking operations
type BookingHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	ListAll(ctx *gin.Context)
	ListByUserID(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// BookingHandler struct holds the services
type bookingHandler struct {
	bookingService bookings.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService bookings.BookingService) BookingHandler {
	return &bookingHandler{
		bookingService: bookingService,
	}
}

// bookingQueryFromContext builds a BookingQuery from the request's query parameters.
func bookingQueryFromContext(ctx *gin.Context) (*bookings.BookingQuery, error) {
	query := bookings.NewBookingQuery()

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if limit := utils.ConvertToInt(ctx.Query("limit")); limit > 0 {
		query.Limit = limit
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}

	return query, nil
}

// Create handles the POST request to create a booking
// @Summary Create a booking
// @Description Create a booking owned by the authenticated user. Status defaults to pending.
// @Tags Booking
// @Accept json
// @Produce json
// @Param requestBody body CreateBookingRequest true "Booking Data"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [post]
func (handler *bookingHandler) Create(ctx *gin.Context) {
	actor := CurrentUser(ctx)
	if actor == nil {
		abortWithError(ctx, auth.ErrInvalidToken)
		return
	}

	var request CreateBookingRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid booking data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	booking, err := handler.bookingService.Create(ctx, actor, &bookings.CreateBooking{
		BookingDate: request.BookingDate,
		Status:      request.Status,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newBookingResponse(booking))
}

// List handles the GET request to list bookings visible to the caller
// @Summary List bookings visible to the authenticated user
// @Description Fetch bookings with pagination and sorting options. Admins see all bookings, regular users only their own.
// @Tags Booking
// @Accept json
// @Produce json
// @Param status query string false "Booking Status"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [get]
func (handler *bookingHandler) List(ctx *gin.Context) {
	actor := CurrentUser(ctx)
	if actor == nil {
		abortWithError(ctx, auth.ErrInvalidToken)
		return
	}

	query, err := bookingQueryFromContext(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	bookingList, err := handler.bookingService.List(ctx, actor, query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	var listResponse = []BookingResponse{}
	for _, booking := range bookingList {
		listResponse = append(listResponse, newBookingResponse(booking))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// ListAll handles the GET request to list all bookings together with their users
// @Summary List all bookings with their owning users
// @Description Fetch every booking joined with its owning user account. Restricted to admins.
// @Tags Booking
// @Accept json
// @Produce json
// @Param status query string false "Booking Status"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} BookingWithUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/all [get]
func (handler *bookingHandler) ListAll(ctx *gin.Context) {
	actor := CurrentUser(ctx)
	if actor == nil {
		abortWithError(ctx, auth.ErrInvalidToken)
		return
	}

	query, err := bookingQueryFromContext(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	bookingList, err := handler.bookingService.ListWithUsers(ctx, actor, query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	var listResponse = []BookingWithUserResponse{}
	for _, bookingWithUser := range bookingList {
		listResponse = append(listResponse, BookingWithUserResponse{
			BookingResponse: newBookingResponse(&bookingWithUser.Booking),
			User:            newUserResponse(&bookingWithUser.User),
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// ListByUserID handles the GET request to list the bookings of a specific user
// @Summary List the bookings of a specific user
// @Description Fetch the bookings owned by the given user. Restricted to admins.
// @Tags Booking
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param status query string false "Booking Status"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/user/{userId} [get]
func (handler *bookingHandler) ListByUserID(ctx *gin.Context) {
	actor := CurrentUser(ctx)
	if actor == nil {
		abortWithError(ctx, auth.ErrInvalidToken)
		return
	}

	userID := ctx.Param("userId")

	query, err := bookingQueryFromContext(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	bookingList, err := handler.bookingService.ListByUserID(ctx, actor, userID, query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	var listResponse = []BookingResponse{}
	for _, booking := range bookingList {
		listResponse = append(listResponse, newBookingResponse(booking))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a booking by ID
// @Summary Retrieve a booking by ID
// @Description Fetch a single booking by its unique ID. Accessible to the owner and to admins.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} BookingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (handler *bookingHandler) GetByID(ctx *gin.Context) {
	actor := CurrentUser(ctx)
	if actor == nil {
		abortWithError(ctx, auth.ErrInvalidToken)
		return
	}

	bookingID := ctx.Param("id")

	booking, err := handler.bookingService.GetByID(ctx, actor, bookingID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}

// UpdateByID handles the PUT request to partially update a booking
// @Summary Update a booking by ID
// @Description Apply a partial update to a booking. Accessible to the owner and to admins.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param requestBody body UpdateBookingRequest true "Booking Data"
// @Success 200 {object} BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id} [put]
func (handler *bookingHandler) UpdateByID(ctx *gin.Context) {
	actor := CurrentUser(ctx)
	if actor == nil {
		abortWithError(ctx, auth.ErrInvalidToken)
		return
	}

	bookingID := ctx.Param("id")

	var request UpdateBookingRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid booking data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	booking, err := handler.bookingService.UpdateByID(ctx, actor, bookingID, &bookings.UpdateBooking{
		BookingDate: request.BookingDate,
		Status:      request.Status,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}

// DeleteByID handles the DELETE request to delete a booking by ID
// @Summary Delete a booking by ID
// @Description Delete a booking by its unique ID. Accessible to the owner and to admins.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204 {object} InfoResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id} [delete]
func (handler *bookingHandler) DeleteByID(ctx *gin.Context) {
	actor := CurrentUser(ctx)
	if actor == nil {
		abortWithError(ctx, auth.ErrInvalidToken)
		return
	}

	bookingID := ctx.Param("id")

	if err := handler.bookingService.DeleteByID(ctx, actor, bookingID); err != nil {
		abortWithError(ctx, err)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted booking with id %s", bookingID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
