package middleware

import (
	"net/http"

	"delta33_backoffice/internal/adapter/http/handlers"
	"delta33_backoffice/internal/usecase"
	"delta33_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errSessionRequired = pkg.NewDomainErrorSimple("SESSION_REQUIRED", "A valid session is required", http.StatusUnauthorized)

// RequireSession rejects requests that do not carry a valid session token.
// Tokens come from the Authorization bearer header or X-Session-Token.
func RequireSession(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Validate(c.Request.Context(), handlers.SessionToken(c)) {
			c.AbortWithStatusJSON(errSessionRequired.HTTPStatus, errSessionRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}
