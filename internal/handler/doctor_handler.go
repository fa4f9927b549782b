package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"doctorsportal/internal/errors"
	"doctorsportal/internal/service"
)

// DoctorHandler handles the doctor registry endpoints.
type DoctorHandler struct {
	doctors service.DoctorService
}

// NewDoctorHandler creates a new doctor handler.
func NewDoctorHandler(doctors service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

// ListDoctors godoc
// @Summary List doctors
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Doctor
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /doctor [get]
func (h *DoctorHandler) ListDoctors(c echo.Context) error {
	doctors, err := h.doctors.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, doctors)
}

// CreateDoctor godoc
// @Summary Add a doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param doctor body map[string]interface{} true "Doctor fields, email required"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /doctor [post]
func (h *DoctorHandler) CreateDoctor(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	result, err := h.doctors.Create(c.Request().Context(), fields)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteDoctor godoc
// @Summary Remove a doctor by email
// @Tags doctors
// @Produce json
// @Param email path string true "Doctor email"
// @Success 200 {object} model.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /doctor/{email} [delete]
func (h *DoctorHandler) DeleteDoctor(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	result, err := h.doctors.Delete(c.Request().Context(), email)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
