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

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for quote generation.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// Create generates and persists a quote linked to an existing appointment.
//
// @Summary  Create a budget
// @Tags     budgets
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateBudgetRequest true "budget"
// @Success  201 {object} response.BudgetResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), payload.AppointmentID, payload.ToItems(), payload.Terms)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(b))
}

// Preview computes the live total for an unsaved quote form. Nothing is
// persisted and the appointment link is not validated here.
//
// @Summary  Preview a budget total
// @Tags     budgets
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateBudgetRequest true "budget"
// @Success  200 {object} response.BudgetPreviewResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /budgets/preview [post]
func (h *BudgetHandler) Preview(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.BudgetPreviewResponse{Total: payload.ResolveTotal()})
}

// List returns all budgets in insertion order.
//
// @Summary  List budgets
// @Tags     budgets
// @Produce  json
// @Success  200 {array} response.BudgetResponse
// @Router   /budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(list))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetAppointmentID),
		errors.Is(err, usecase.ErrInvalidBudgetItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
