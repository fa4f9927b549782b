package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"doctorsportal/internal/errors"
)

// serviceError converts a service error into the HTTP error the router renders.
// The original error is kept as the internal cause for logging.
func serviceError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// emailParam returns the :email path parameter decoded, so /user/a%40x.com
// and /user/a@x.com address the same user.
func emailParam(c echo.Context) (string, error) {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid email path parameter",
			Code:    "INVALID_EMAIL",
		}).SetInternal(err)
	}
	return email, nil
}
