package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"vault/internal/auth"
	"vault/internal/config"
	"vault/internal/handler"
	"vault/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	cookies *auth.CookieStore,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	documentHandler *handler.DocumentHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// The gate sees every request; API, upload, and swagger prefixes are
	// classified as assets and pass through to their own handling.
	e.Use(middleware.RouteGate(tokens, cookies))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	// Pages
	e.GET("/", pageHandler.Landing)
	e.GET("/auth/login", pageHandler.Login)
	e.GET("/auth/signup", pageHandler.Signup)
	e.GET("/dashboard", pageHandler.Dashboard)
	e.GET("/library", pageHandler.Library)
	e.GET("/upload", pageHandler.Upload)
	e.GET("/activity", pageHandler.Activity)
	e.GET("/admin", pageHandler.Admin)

	// Session endpoints
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/logout", authHandler.Logout)

	// API routes enforce their own authorization: the session cookie (or a
	// Bearer header) is verified by the token service, not exempted like
	// other asset paths.
	api := e.Group("/api", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.CookieName + ",header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.Verify(token)
		},
	}))

	api.GET("/me", authHandler.Me)

	// Document routes
	api.GET("/documents", documentHandler.List)
	api.POST("/documents", documentHandler.Upload)
	api.GET("/documents/:id", documentHandler.Get)

	// User routes
	api.GET("/profile", userHandler.GetProfile)
	api.PUT("/profile", userHandler.UpdateProfile)
	api.GET("/activities", userHandler.ListActivities)
	api.GET("/admin/users", userHandler.ListUsers)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
