package handlers

import (
	"errors"
	"net/http"
	"strings"

	"delta33_backoffice/internal/adapter/http/dto/request"
	"delta33_backoffice/internal/adapter/http/dto/response"
	"delta33_backoffice/internal/usecase"
	"delta33_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errBadCredentials      = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
)

// AuthHandler exposes the placeholder login gate.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login exchanges credentials for a session token. Rejections are flat: the
// response never says whether the username or the password was wrong.
//
// @Summary  Log in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.LoginRequest true "credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(errBadCredentials.HTTPStatus, errBadCredentials.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token})
}

// Logout drops the caller's session. Always succeeds, even for tokens that
// were never issued.
//
// @Summary  Log out
// @Tags     auth
// @Success  204
// @Router   /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.usecase.Logout(c.Request.Context(), SessionToken(c))
	c.Status(http.StatusNoContent)
}

// SessionToken extracts the session token from the Authorization bearer
// header, falling back to X-Session-Token.
func SessionToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return c.GetHeader("X-Session-Token")
}
