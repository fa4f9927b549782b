package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"doctorsportal/internal/errors"
)

const emailContextKey = "auth.email"

// Decision is the outcome of a guard. The zero value denies nothing and
// should not be used; build decisions with Allow and Deny.
type Decision struct {
	allowed bool
	status  int
	reason  string
	cause   error
}

// Allow lets the request continue.
func Allow() Decision {
	return Decision{allowed: true}
}

// Deny stops the request with the given status and client-facing reason.
// cause is kept for logging only.
func Deny(status int, reason string, cause error) Decision {
	return Decision{status: status, reason: reason, cause: cause}
}

// Allowed reports whether the request may continue.
func (d Decision) Allowed() bool { return d.allowed }

// Status is the HTTP status of a denial.
func (d Decision) Status() int { return d.status }

// Reason is the message rendered for a denial.
func (d Decision) Reason() string { return d.reason }

// Guard decides whether a request may reach its handler.
type Guard interface {
	Authorize(c echo.Context) Decision
}

// GuardFunc adapts a function to Guard.
type GuardFunc func(c echo.Context) Decision

// Authorize implements Guard.
func (f GuardFunc) Authorize(c echo.Context) Decision { return f(c) }

// Require runs guards in order and rejects the request at the first denial.
func Require(guards ...Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, g := range guards {
				d := g.Authorize(c)
				if d.Allowed() {
					continue
				}
				httpErr := echo.NewHTTPError(d.status, errors.ErrorResponse{Message: d.reason})
				if d.cause != nil {
					httpErr = httpErr.SetInternal(d.cause)
				}
				return httpErr
			}
			return next(c)
		}
	}
}

// TokenVerifier verifies bearer tokens.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticated admits requests that carry a valid bearer token and records
// the token's email for later guards and handlers. A missing Authorization
// header is 401; anything wrong with a present header is 403.
func Authenticated(tokens TokenVerifier) Guard {
	return GuardFunc(func(c echo.Context) Decision {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return Deny(http.StatusUnauthorized, "UnAuthorized access", nil)
		}

		email, err := tokens.Verify(bearerToken(header))
		if err != nil {
			return Deny(http.StatusForbidden, "Forbidden access", nil)
		}

		c.Set(emailContextKey, email)
		return Allow()
	})
}

// RoleChecker reports whether an email belongs to an admin. Unknown emails
// are not admins.
type RoleChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Admin admits requests whose authenticated email holds the admin role. It
// must run after Authenticated.
func Admin(roles RoleChecker) Guard {
	return GuardFunc(func(c echo.Context) Decision {
		email := EmailFromContext(c)
		if email == "" {
			return Deny(http.StatusForbidden, "forbidden", nil)
		}

		ok, err := roles.IsAdmin(c.Request().Context(), email)
		if err != nil {
			return Deny(http.StatusInternalServerError, "internal server error", err)
		}
		if !ok {
			return Deny(http.StatusForbidden, "forbidden", nil)
		}
		return Allow()
	})
}

// DenialObserver records guard denials.
type DenialObserver interface {
	ObserveDenial(guard string, status int)
}

// Observe reports every denial of g to obs under name.
func Observe(name string, g Guard, obs DenialObserver) Guard {
	return GuardFunc(func(c echo.Context) Decision {
		d := g.Authorize(c)
		if !d.Allowed() && obs != nil {
			obs.ObserveDenial(name, d.Status())
		}
		return d
	})
}

// EmailFromContext returns the email set by Authenticated, or "".
func EmailFromContext(c echo.Context) string {
	email, _ := c.Get(emailContextKey).(string)
	return email
}

// bearerToken returns the credential after the scheme, like
// "Authorization: Bearer <token>". A header without a credential yields "".
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
