package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vault/internal/auth"
	"vault/internal/model"
)

// sessionClaims extracts the verified claim set the JWT middleware stored on
// the context.
func sessionClaims(c echo.Context) (*auth.SessionClaims, error) {
	claims, ok := c.Get("user").(*auth.SessionClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	return claims, nil
}

// sessionUser reconstructs the authenticated user from the claim set.
func sessionUser(c echo.Context) (*model.User, error) {
	claims, err := sessionClaims(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	return &model.User{
		ID:    id,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}, nil
}
