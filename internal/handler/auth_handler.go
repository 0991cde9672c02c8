package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tastetrack/internal/auth"
	"tastetrack/internal/errors"
	"tastetrack/internal/response"
	"tastetrack/internal/service"
)

// AuthHandler handles login and token refresh.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the login result the terminal clients consume.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Token    string `json:"token,omitempty"`
	UserType string `json:"userType,omitempty"`
	UserID   string `json:"userId,omitempty"`
}

// Login godoc
// @Summary Authenticate a user and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} LoginResponse
// @Failure 401 {object} LoginResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, LoginResponse{Success: false, Message: "invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, LoginResponse{Success: false, Message: "invalid request data"})
	}

	token, role, err := h.authService.Login(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		if err == errors.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, LoginResponse{Success: false, Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, LoginResponse{Success: false, Message: "an error occurred during login"})
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success:  true,
		Message:  "Login successful",
		Token:    token,
		UserType: string(role),
		UserID:   req.UserID,
	})
}

// Refresh godoc
// @Summary Re-issue a token for the presented, still-valid session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} LoginResponse
// @Failure 401 {object} LoginResponse
// @Router /login/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, LoginResponse{Success: false, Message: "missing or invalid token"})
	}

	token, role, err := h.authService.Refresh(c.Request().Context(), claims.UserID)
	if err != nil {
		if err == errors.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, LoginResponse{Success: false, Message: "invalid user"})
		}
		return c.JSON(http.StatusInternalServerError, LoginResponse{Success: false, Message: "error refreshing token"})
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success:  true,
		Message:  "Token refreshed",
		Token:    token,
		UserType: string(role),
		UserID:   claims.UserID,
	})
}

// ValidateUser godoc
// @Summary Fetch a user record without its password
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param userid path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /login/validate/{userid} [get]
func (h *AuthHandler) ValidateUser(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("userid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(user, "User retrieved successfully"))
}
