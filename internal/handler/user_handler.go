package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"doctorsportal/internal/auth"
	"doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/service"
)

// UserHandler handles user and role endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpsertUserResponse is returned after a user is registered or updated.
type UpsertUserResponse struct {
	Result *model.WriteResult `json:"result"`
	Token  string             `json:"token"`
}

// AdminStatusResponse reports whether an email belongs to an admin.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// AdminStatus godoc
// @Summary Check whether a user is an admin
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} AdminStatusResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	ok, err := h.svc.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, AdminStatusResponse{Admin: ok})
}

// Promote godoc
// @Summary Grant the admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email of the user to promote"
// @Success 200 {object} model.WriteResult
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/admin/{email} [put]
func (h *UserHandler) Promote(c echo.Context) error {
	target, err := emailParam(c)
	if err != nil {
		return err
	}

	result, err := h.svc.Promote(c.Request().Context(), target, auth.EmailFromContext(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// Upsert godoc
// @Summary Register or update a user and issue a token
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param profile body map[string]interface{} false "Profile fields"
// @Success 200 {object} UpsertUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/{email} [put]
func (h *UserHandler) Upsert(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	profile := map[string]interface{}{}
	if err := c.Bind(&profile); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	result, token, err := h.svc.Upsert(c.Request().Context(), email, profile)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, UpsertUserResponse{Result: result, Token: token})
}
