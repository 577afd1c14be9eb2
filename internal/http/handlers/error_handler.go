// Central error handler: the single terminal stage that turns any error
// raised by the validation chain or a handler into the error envelope.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knazaryan/go-books-backend/internal/apperr"
	"github.com/knazaryan/go-books-backend/internal/http/middleware"
)

// ErrorHandler returns the terminal middleware of every route. It lets the
// chain run, then classifies the last collected error via apperr.From: a
// typed error passes through, malformed-JSON and missing-record errors are
// mapped to their kinds, and anything else becomes Internal. The error
// envelope is written with the kind's status code.
//
// Server-side failures are logged with the request-scoped logger; the raw
// cause never reaches the response body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		ae := apperr.From(err)

		if ae.Status >= http.StatusInternalServerError {
			middleware.LoggerFrom(c).Error().
				Err(err).
				Str("kind", string(ae.Kind)).
				Msg("request failed")
		}

		c.JSON(ae.Status, ErrorEnvelope(ae))
	}
}

// NoRoute answers unmatched method/path combinations: a Validation-kind
// envelope describing the incorrect address, served at status 404.
func NoRoute(c *gin.Context) {
	ae := apperr.Validation(apperr.MsgIncorrectAddress).WithStatus(http.StatusNotFound)
	c.JSON(ae.Status, ErrorEnvelope(ae))
}
