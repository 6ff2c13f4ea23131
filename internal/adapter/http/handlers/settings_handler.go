package handlers

import (
	"fmt"
	"net/http"
	"time"

	"delta33_backoffice/internal/adapter/http/dto/response"
	"delta33_backoffice/internal/domain/entities"
	"delta33_backoffice/internal/usecase"
	"delta33_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidArchivePayload = pkg.NewDomainErrorSimple("INVALID_ARCHIVE_INPUT", "Invalid archive payload", http.StatusBadRequest)

// SettingsHandler covers the maintenance surface: archive export/restore and
// the one-time install hint flag.

type SettingsHandler struct {
	archive  usecase.IArchiveUseCase
	settings usecase.ISettingsUseCase
}

func NewSettingsHandler(archive usecase.IArchiveUseCase, settings usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{archive: archive, settings: settings}
}

// Export downloads the full archive as an attachment named after today's
// date, e.g. delta33_archive_2026-08-31.json.
//
// @Summary  Export all records
// @Tags     settings
// @Produce  json
// @Success  200 {object} entities.Archive
// @Failure  500 {object} pkg.HTTPError
// @Router   /settings/export [get]
func (h *SettingsHandler) Export(c *gin.Context) {
	archive, err := h.archive.Export(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	name := h.archive.FileName(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.JSON(http.StatusOK, archive)
}

// Restore replaces the four record stores with the uploaded archive.
//
// @Summary  Restore records from an archive
// @Tags     settings
// @Accept   json
// @Param    payload body entities.Archive true "archive"
// @Success  204
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /settings/restore [post]
func (h *SettingsHandler) Restore(c *gin.Context) {
	var archive entities.Archive
	if err := c.ShouldBindJSON(&archive); err != nil {
		c.JSON(errInvalidArchivePayload.HTTPStatus, errInvalidArchivePayload.ToHTTPError())
		return
	}

	if err := h.archive.Restore(c.Request.Context(), archive); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// InstallHint reports whether the install hint was already shown.
//
// @Summary  Install hint state
// @Tags     settings
// @Produce  json
// @Success  200 {object} response.InstallHintResponse
// @Failure  500 {object} pkg.HTTPError
// @Router   /settings/install-hint [get]
func (h *SettingsHandler) InstallHint(c *gin.Context) {
	shown, err := h.settings.InstallHintShown(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.InstallHintResponse{Shown: shown})
}

// MarkInstallHint marks the install hint as shown. Idempotent.
//
// @Summary  Mark install hint shown
// @Tags     settings
// @Success  204
// @Failure  500 {object} pkg.HTTPError
// @Router   /settings/install-hint [post]
func (h *SettingsHandler) MarkInstallHint(c *gin.Context) {
	if err := h.settings.MarkInstallHintShown(c.Request.Context()); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
