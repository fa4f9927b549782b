package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"doctorsportal/internal/auth"
	"doctorsportal/internal/config"
	"doctorsportal/internal/errors"
	"doctorsportal/internal/handler"
	"doctorsportal/internal/metrics"
	applog "doctorsportal/internal/middleware"
)

// Handlers groups the route handlers.
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Users    *handler.UserHandler
	Bookings *handler.BookingHandler
	Doctors  *handler.DoctorHandler
}

// Dependencies are the cross-cutting components the route table needs.
type Dependencies struct {
	Logger   zerolog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Tokens   auth.TokenVerifier
	Roles    auth.RoleChecker
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, deps Dependencies, h Handlers) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(deps.Logger)
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(applog.Logger(deps.Logger))
	e.Use(middleware.Recover())
	e.Use(deps.Metrics.Middleware())

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticated := auth.Require(auth.Observe("authenticated", auth.Authenticated(deps.Tokens), deps.Metrics))
	admin := auth.Require(
		auth.Observe("authenticated", auth.Authenticated(deps.Tokens), deps.Metrics),
		auth.Observe("admin", auth.Admin(deps.Roles), deps.Metrics),
	)

	// Catalog
	e.GET("/service", h.Catalog.ListNames)
	e.GET("/services", h.Catalog.ListServices)
	e.GET("/available", h.Catalog.Available)

	// Users
	e.GET("/user", h.Users.ListUsers, authenticated)
	e.GET("/admin/:email", h.Users.AdminStatus)
	e.PUT("/user/admin/:email", h.Users.Promote, admin)
	e.PUT("/user/:email", h.Users.Upsert)

	// Bookings
	e.GET("/booking", h.Bookings.ListBookings, authenticated)
	e.POST("/booking", h.Bookings.CreateBooking)

	// Doctors
	e.GET("/doctor", h.Doctors.ListDoctors, admin)
	e.POST("/doctor", h.Doctors.CreateDoctor, admin)
	e.DELETE("/doctor/:email", h.Doctors.DeleteDoctor)
}

// ErrorHandler renders every error as {message}. Server-side failures are
// logged with their internal cause; clients only see a generic message.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := errors.ErrorResponse{Message: "internal server error", Code: "INTERNAL_ERROR"}
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			switch msg := he.Message.(type) {
			case errors.ErrorResponse:
				body = msg
			case string:
				body = errors.ErrorResponse{Message: msg}
			default:
				body = errors.ErrorResponse{Message: http.StatusText(status)}
			}
		}

		if status >= http.StatusInternalServerError {
			cause := err
			if he, ok := err.(*echo.HTTPError); ok && he.Internal != nil {
				cause = he.Internal
			}
			logger.Error().
				Err(cause).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("path", c.Path()).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Error().Err(err).Msg("write error response")
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
