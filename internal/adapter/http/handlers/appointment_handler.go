package handlers

import (
	"errors"
	"net/http"

	"delta33_backoffice/internal/adapter/http/dto/request"
	"delta33_backoffice/internal/adapter/http/dto/response"
	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase"
	"delta33_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)

// AppointmentHandler handles HTTP requests for the appointment book.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

// Schedule creates a staff-entered appointment.
//
// @Summary  Schedule an appointment
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Param    payload body request.ScheduleAppointmentRequest true "appointment"
// @Success  201 {object} response.AppointmentResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /appointments [post]
func (h *AppointmentHandler) Schedule(c *gin.Context) {
	h.schedule(c, false)
}

// ScheduleGuest creates a guest-submitted appointment. Guest submissions
// always start pending regardless of payload.
//
// @Summary  Submit a guest appointment request
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Param    payload body request.ScheduleAppointmentRequest true "appointment"
// @Success  201 {object} response.AppointmentResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /appointments/guest [post]
func (h *AppointmentHandler) ScheduleGuest(c *gin.Context) {
	h.schedule(c, true)
}

func (h *AppointmentHandler) schedule(c *gin.Context, guest bool) {
	var payload request.ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	status := entities.AppointmentStatus(payload.Status)
	if guest {
		status = entities.AppointmentStatusPending
	}

	a, err := h.usecase.Schedule(c.Request.Context(), usecase.ScheduleAppointmentInput{
		ClientName:  payload.ClientName,
		ClientEmail: payload.ClientEmail,
		ServiceType: payload.ServiceType,
		Date:        payload.Date,
		Time:        payload.Time,
		Notes:       payload.Notes,
		Status:      status,
	})
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(a))
}

// List returns all appointments in insertion order.
//
// @Summary  List appointments
// @Tags     appointments
// @Produce  json
// @Success  200 {array} response.AppointmentResponse
// @Router   /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAppointments(list))
}

// GetByID returns one appointment.
//
// @Summary  Get an appointment
// @Tags     appointments
// @Produce  json
// @Param    id path string true "appointment id"
// @Success  200 {object} response.AppointmentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidAppointmentDate),
		errors.Is(err, usecase.ErrInvalidAppointmentStatus),
		errors.Is(err, usecase.ErrInvalidAppointmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
