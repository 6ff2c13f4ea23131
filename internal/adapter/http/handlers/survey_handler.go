package handlers

import (
	"errors"
	"net/http"

	"delta33_backoffice/internal/adapter/http/dto/request"
	"delta33_backoffice/internal/adapter/http/dto/response"
	"delta33_backoffice/internal/usecase"
	"delta33_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSurveyPayload = pkg.NewDomainErrorSimple("INVALID_SURVEY_INPUT", "Invalid survey payload", http.StatusBadRequest)

// SurveyHandler handles HTTP requests for satisfaction surveys.

type SurveyHandler struct {
	usecase usecase.ISurveyUseCase
}

func NewSurveyHandler(uc usecase.ISurveyUseCase) *SurveyHandler {
	return &SurveyHandler{usecase: uc}
}

// Submit records a survey for an appointment that does not have one yet.
//
// @Summary  Submit a survey
// @Tags     surveys
// @Accept   json
// @Produce  json
// @Param    payload body request.SubmitSurveyRequest true "survey"
// @Success  201 {object} response.SurveyResponseBody
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /surveys [post]
func (h *SurveyHandler) Submit(c *gin.Context) {
	var payload request.SubmitSurveyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSurveyPayload.HTTPStatus, errInvalidSurveyPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Submit(c.Request.Context(), payload.AppointmentID, payload.Rating, payload.Comment)
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSurvey(s))
}

// List returns all surveys in insertion order.
//
// @Summary  List surveys
// @Tags     surveys
// @Produce  json
// @Success  200 {array} response.SurveyResponseBody
// @Router   /surveys [get]
func (h *SurveyHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSurveys(list))
}

func mapSurveyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSurveyAppointmentID),
		errors.Is(err, usecase.ErrInvalidSurveyRating):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSurveyAlreadyExists):
		return pkg.NewDomainErrorSimple("SURVEY_ALREADY_EXISTS", "Survey already exists for this appointment", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
