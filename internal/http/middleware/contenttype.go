// Content-Type stage of the validation chain.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/knazaryan/go-books-backend/internal/apperr"
)

// ContentTypeNone is the sentinel for routes that expect no request body.
// Such routes reject any request bearing a Content-Type header at all.
const ContentTypeNone = "none"

// ContentType returns the first stage of a route's validation chain. It
// compares the request's Content-Type header against the route's single
// allowed value by exact string match: no wildcards, no charset parsing.
// A mismatch raises a ContentType error and aborts the chain.
func ContentType(allowed string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("Content-Type")

		if allowed == ContentTypeNone {
			if got != "" {
				abortWith(c, apperr.ContentType(apperr.MsgUnsupportedContentType))
				return
			}
			c.Next()
			return
		}

		if got != allowed {
			abortWith(c, apperr.ContentType(apperr.MsgUnsupportedContentType))
			return
		}
		c.Next()
	}
}

// abortWith records a typed error and stops the chain. The central error
// handler turns it into the error envelope.
func abortWith(c *gin.Context, err *apperr.Error) {
	_ = c.Error(err)
	c.Abort()
}
