package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"vault/internal/auth"
	apperrors "vault/internal/errors"
	"vault/internal/service"
)

// AuthHandler handles login, signup, logout, and session inspection.
type AuthHandler struct {
	authService service.AuthService
	cookies     *auth.CookieStore
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookies *auth.CookieStore) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// LoginRequest represents a login form submission.
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// SignupRequest represents a signup form submission.
type SignupRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Name     string `form:"name" json:"name" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// AuthResponse reports the outcome of a login or signup attempt.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 401 {object} AuthResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Error: "email and password are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Error: "email and password are required"})
	}

	_, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			log.Printf("login failed for %s: %v", req.Email, err)
		}
		return c.JSON(httpErr.StatusCode, AuthResponse{Error: httpErr.Message})
	}

	h.cookies.Write(c, token)
	return c.JSON(http.StatusOK, AuthResponse{Success: true, Redirect: "/dashboard"})
}

// Signup godoc
// @Summary Create an account
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param email formData string true "Email"
// @Param name formData string true "Display name"
// @Param password formData string true "Password"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 409 {object} AuthResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Error: "all fields are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Error: "all fields are required"})
	}

	_, token, err := h.authService.Signup(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			log.Printf("signup failed for %s: %v", req.Email, err)
		}
		return c.JSON(httpErr.StatusCode, AuthResponse{Error: httpErr.Message})
	}

	h.cookies.Write(c, token)
	return c.JSON(http.StatusOK, AuthResponse{Success: true, Redirect: "/dashboard"})
}

// Logout godoc
// @Summary End the session
// @Tags auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Sessions are stateless; deleting the cookie destroys the session.
	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, AuthResponse{Success: true, Redirect: "/auth/login"})
}

// Me godoc
// @Summary Current session claims
// @Tags auth
// @Produce json
// @Success 200 {object} auth.SessionClaims
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}
