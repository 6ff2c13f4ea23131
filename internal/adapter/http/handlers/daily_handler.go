package handlers

import (
	"net/http"

	"delta33_backoffice/internal/adapter/http/dto/response"
	"delta33_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DailyHandler serves the daily informational feed.

type DailyHandler struct {
	usecase usecase.IDailyUseCase
}

func NewDailyHandler(uc usecase.IDailyUseCase) *DailyHandler {
	return &DailyHandler{usecase: uc}
}

// Today returns the daily payload. Collaborator failures are absorbed
// upstream, so this endpoint always answers 200.
//
// @Summary  Daily information
// @Tags     daily
// @Produce  json
// @Success  200 {object} response.DailyInfoResponse
// @Router   /daily [get]
func (h *DailyHandler) Today(c *gin.Context) {
	info := h.usecase.Today(c.Request.Context())
	c.JSON(http.StatusOK, response.FromDailyInfo(info))
}
