package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tastetrack/internal/model"
	"tastetrack/internal/response"
	"tastetrack/internal/service"
)

// UserHandler handles staff account management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents a new staff account.
type CreateUserRequest struct {
	UserID   string `json:"userId" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UpdateUserRequest updates password and/or role.
type UpdateUserRequest struct {
	Password string `json:"password" validate:"omitempty,min=4"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// ListUsers godoc
// @Summary List staff accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(users, "Users retrieved successfully"))
}

// CreateUser godoc
// @Summary Create a staff account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request data"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request data", err.Error()))
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.UserID, req.Password, model.Role(req.Role))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, response.OK(user, "User created successfully"))
}

// UpdateUser godoc
// @Summary Update a staff account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userid path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{userid} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request data"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request data", err.Error()))
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), c.Param("userid"), req.Password, model.Role(req.Role))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(user, "User updated successfully"))
}

// DeleteUser godoc
// @Summary Delete a staff account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userid path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{userid} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), c.Param("userid")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(nil, "User deleted successfully"))
}
