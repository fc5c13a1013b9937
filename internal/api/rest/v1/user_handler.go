package v1

import (
	"fmt"
	"net/http"

	"booking_service/internal/domain/users"
	"booking_service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling user account operations
type UserHandler interface {
	Register(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// UserHandler struct holds the services
type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{
		userService: userService,
	}
}

// Register handles the POST request to create a new user account
// @Summary Register a new user account
// @Description Create a user account with a unique username and email. The password is stored as a bcrypt hash.
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body RegisterUserRequest true "User Data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func (handler *userHandler) Register(ctx *gin.Context) {

	var request RegisterUserRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid user data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	user, err := handler.userService.Register(ctx, &users.RegisterUser{
		Username: request.Username,
		Email:    request.Email,
		FullName: request.FullName,
		Role:     request.Role,
		IsActive: request.IsActive,
		Password: request.Password,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// List handles the GET request to list user accounts with optional query parameters
// @Summary List user accounts based on query parameters
// @Description Fetch a list of user accounts with pagination and sorting options.
// @Tags User
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (handler *userHandler) List(ctx *gin.Context) {
	query := users.NewUserQuery()

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
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	userList, err := handler.userService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	var listResponse = []UserResponse{}
	for _, user := range userList {
		listResponse = append(listResponse, newUserResponse(user))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a user account by ID
// @Summary Retrieve a user account by ID
// @Description Fetch a single user account by its unique ID.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (handler *userHandler) GetByID(ctx *gin.Context) {
	userID := ctx.Param("id")

	user, err := handler.userService.GetByID(ctx, userID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateByID handles the PUT request to partially update a user account
// @Summary Update a user account by ID
// @Description Apply a partial update to a user account. Username and email uniqueness is re-checked, a supplied password is re-hashed.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param requestBody body UpdateUserRequest true "User Data"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (handler *userHandler) UpdateByID(ctx *gin.Context) {
	userID := ctx.Param("id")

	var request UpdateUserRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid user data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	user, err := handler.userService.UpdateByID(ctx, userID, &users.UpdateUser{
		Username: request.Username,
		Email:    request.Email,
		FullName: request.FullName,
		Role:     request.Role,
		IsActive: request.IsActive,
		Password: request.Password,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteByID handles the DELETE request to delete a user account by ID
// @Summary Delete a user account by ID
// @Description Delete a user account by its unique ID.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 204 {object} InfoResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	userID := ctx.Param("id")

	if err := handler.userService.DeleteByID(ctx, userID); err != nil {
		abortWithError(ctx, err)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted user with id %s", userID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
