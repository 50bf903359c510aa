package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"cutlery/docs"
	"cutlery/internal/config"
	apperrors "cutlery/internal/errors"
	"cutlery/internal/handler"
	"cutlery/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Requirement *handler.RequirementHandler
	Choice      *handler.ChoiceHandler
	HomeDesign  *handler.HomeDesignHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, log *zap.Logger, authService service.AuthService, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/token", h.Auth.Token)
	e.POST("/register", h.Auth.Register)
	e.GET("/choices/metals", h.Choice.Metals)
	e.GET("/choices/handles", h.Choice.Handles)
	e.GET("/choices/types", h.Choice.Types)

	// Secured routes
	auth := bearerAuth(authService)

	e.GET("/users/me", h.Auth.Me, auth)

	e.GET("/requirements", h.Requirement.List, auth)
	e.GET("/requirements/", h.Requirement.List, auth)
	e.GET("/requirements/:id", h.Requirement.Get, auth)
	e.POST("/requirements/new", h.Requirement.Create, auth)
	e.PUT("/requirements/edit/:id", h.Requirement.Update, auth)
	e.DELETE("/requirements/delete/:id", h.Requirement.Delete, auth)

	e.POST("/home-design/create", h.HomeDesign.Create, auth)
	e.GET("/home-design", h.HomeDesign.List, auth)
	e.GET("/home-design/", h.HomeDesign.List, auth)
}

// bearerAuth resolves the bearer token to a stored user and exposes it under handler.CallerKey.
func bearerAuth(authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.CallerKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authService.Resolve(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(err)
			if httpErr.StatusCode != http.StatusUnauthorized {
				httpErr = apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
			}
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
