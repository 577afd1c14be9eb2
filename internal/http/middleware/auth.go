// Authentication stages of the validation chain.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/knazaryan/go-books-backend/internal/apperr"
	"github.com/knazaryan/go-books-backend/internal/domain"
)

// apiKeyHeader carries the opaque key identifying a book's creator.
const apiKeyHeader = "X-API-Key"

// Authenticator verifies a username/password pair. Implemented by
// services.UserService; failures must not distinguish an unknown user from
// a wrong password.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// KeyResolver resolves a user from an opaque API key. Implemented by
// services.UserService.
type KeyResolver interface {
	GetByAPIKey(ctx context.Context, key string) (*domain.User, error)
}

// Authenticate returns the credential stage of a route's validation chain.
// It reads username and password from the body validated by an earlier
// ValidateBody stage, verifies them, and attaches the matching user to the
// context. Any failure raises Unauthenticated with the shared message.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := BodyFrom(c)
		username, _ := body["username"].(string)
		password, _ := body["password"].(string)

		u, err := auth.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			abortWith(c, apperr.From(err))
			return
		}
		c.Set(authUserKey, u)
		c.Next()
	}
}

// APIKey returns the optional api-key stage used by book creation. When the
// X-API-Key header is absent the chain continues without a creator; when it
// is present it must resolve to a user, otherwise Unauthenticated is raised.
func APIKey(keys KeyResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		u, err := keys.GetByAPIKey(c.Request.Context(), key)
		if err != nil {
			abortWith(c, apperr.From(err))
			return
		}
		c.Set(authUserKey, u)
		c.Next()
	}
}
