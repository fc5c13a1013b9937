package v1

import (
	"fmt"
	"net/http"

	"booking_service/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling authentication operations
type AuthHandler interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

// AuthHandler struct holds the services
type authHandler struct {
	authService auth.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Login handles the POST request to exchange credentials for an access token
// @Summary Log in with username and password
// @Description Verify the given credentials and return a signed bearer access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "User Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {

	var request LoginRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid login data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	token, err := handler.authService.Login(ctx, request.Username, request.Password)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	tokenResponse := TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}

	ctx.JSON(http.StatusOK, tokenResponse)
}

// Logout handles the POST request to end a session
// @Summary Log out the current user
// @Description Acknowledge a logout. Tokens are stateless, so the client is expected to discard its token.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} InfoResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (handler *authHandler) Logout(ctx *gin.Context) {
	var infoResponse InfoResponse
	infoResponse.Message = "successfully logged out"
	ctx.JSON(http.StatusOK, infoResponse)
}
