package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"vault/internal/auth"
)

// PageHandler serves the HTML shells the route gate navigates between. The
// actual views are rendered client-side; these pages exist as navigation
// targets.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func page(c echo.Context, title string) error {
	return c.HTML(http.StatusOK, fmt.Sprintf(
		`<!doctype html><html><head><title>%s | Vault</title></head><body><div id="root" data-page=%q></div></body></html>`,
		title, title))
}

// Landing serves the public landing page.
func (h *PageHandler) Landing(c echo.Context) error { return page(c, "Vault") }

// Login serves the login page.
func (h *PageHandler) Login(c echo.Context) error { return page(c, "Sign In") }

// Signup serves the signup page.
func (h *PageHandler) Signup(c echo.Context) error { return page(c, "Create Account") }

// Dashboard serves the authenticated landing page.
func (h *PageHandler) Dashboard(c echo.Context) error {
	if claims, ok := c.Get("session").(*auth.SessionClaims); ok {
		return page(c, "Dashboard: "+claims.Name)
	}
	return page(c, "Dashboard")
}

// Library serves the document library page.
func (h *PageHandler) Library(c echo.Context) error { return page(c, "Library") }

// Upload serves the upload page.
func (h *PageHandler) Upload(c echo.Context) error { return page(c, "Upload") }

// Activity serves the activity log page.
func (h *PageHandler) Activity(c echo.Context) error { return page(c, "Activity") }

// Admin serves the admin page.
func (h *PageHandler) Admin(c echo.Context) error { return page(c, "Admin") }
