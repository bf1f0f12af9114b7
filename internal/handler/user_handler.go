package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "vault/internal/errors"
	"vault/internal/service"
)

// UserHandler handles profile and directory endpoints.
type UserHandler struct {
	userService     service.UserService
	activityService service.ActivityService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, activityService service.ActivityService) *UserHandler {
	return &UserHandler{userService: userService, activityService: activityService}
}

// UpdateProfileRequest represents a profile update.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags users
// @Produce json
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}
	profile, err := h.userService.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update name or email
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.UpdateProfile(c.Request().Context(), user.ID, req.Name, req.Email)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// ListActivities godoc
// @Summary Current user's activity log
// @Tags users
// @Produce json
// @Success 200 {array} model.Activity
// @Router /api/activities [get]
func (h *UserHandler) ListActivities(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}
	activities, err := h.activityService.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, activities)
}

// ListUsers godoc
// @Summary List all users (admin)
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}
	users, err := h.userService.ListUsers(c.Request().Context(), user)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}
