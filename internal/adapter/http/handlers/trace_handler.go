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

var errInvalidTracePayload = pkg.NewDomainErrorSimple("INVALID_TRACE_INPUT", "Invalid trace payload", http.StatusBadRequest)

// TraceHandler handles HTTP requests for agreement traces.

type TraceHandler struct {
	usecase usecase.ITraceUseCase
}

func NewTraceHandler(uc usecase.ITraceUseCase) *TraceHandler {
	return &TraceHandler{usecase: uc}
}

// Log records a client agreement. The AI summary is awaited synchronously;
// if the analyzer fails the trace still lands, with the placeholder summary.
//
// @Summary  Log an agreement trace
// @Tags     traces
// @Accept   json
// @Produce  json
// @Param    payload body request.LogTraceRequest true "trace"
// @Success  201 {object} response.TraceResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /traces [post]
func (h *TraceHandler) Log(c *gin.Context) {
	var payload request.LogTraceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTracePayload.HTTPStatus, errInvalidTracePayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Log(c.Request.Context(), payload.ClientID, payload.Content, entities.TraceSource(payload.Source))
	if err != nil {
		appErr := mapTraceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTrace(t))
}

// List returns all traces in insertion order.
//
// @Summary  List agreement traces
// @Tags     traces
// @Produce  json
// @Success  200 {array} response.TraceResponse
// @Router   /traces [get]
func (h *TraceHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTraceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTraces(list))
}

func mapTraceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyTraceContent),
		errors.Is(err, usecase.ErrInvalidTraceSource):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
