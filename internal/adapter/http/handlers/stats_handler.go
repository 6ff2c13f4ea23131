package handlers

import (
	"net/http"

	"delta33_backoffice/internal/adapter/http/dto/response"
	"delta33_backoffice/internal/usecase"
	"delta33_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the derived dashboard aggregate.

type StatsHandler struct {
	usecase usecase.IStatsUseCase
}

func NewStatsHandler(uc usecase.IStatsUseCase) *StatsHandler {
	return &StatsHandler{usecase: uc}
}

// Dashboard recomputes and returns the dashboard numbers.
//
// @Summary  Dashboard statistics
// @Tags     stats
// @Produce  json
// @Success  200 {object} response.DashboardStatsResponse
// @Failure  500 {object} pkg.HTTPError
// @Router   /stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}
