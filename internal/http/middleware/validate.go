// Body-schema, id-format and resource-existence stages of the validation
// chain, plus the context accessors handlers use to consume their results.
package middleware

import (
	"context"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/knazaryan/go-books-backend/internal/apperr"
	"github.com/knazaryan/go-books-backend/internal/domain"
	"github.com/knazaryan/go-books-backend/internal/validate"
)

const (
	// bodyKey stores the decoded request body (map[string]any).
	bodyKey = "validatedBody"
	// bookKey stores the book fetched by the existence stage.
	bookKey = "book"
	// authUserKey stores the user resolved by an authentication stage.
	authUserKey = "authUser"
)

// BookGetter fetches a book by id. Implemented by services.BookService.
type BookGetter interface {
	Get(ctx context.Context, id string) (*domain.Book, error)
}

// ValidateBody returns the schema stage of a route's validation chain. It
// decodes the JSON body, enforces the route's exact field set and per-field
// rules, and stashes the decoded map in the context for later stages and
// the handler.
//
// Malformed JSON, undeclared fields, and missing or mistyped fields all
// raise a Validation error. Every failing field is collected into
// innerErrors so the client sees the full list at once.
func ValidateBody(schema validate.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortWith(c, apperr.Validation(apperr.MsgInvalidJSON))
			return
		}

		var body map[string]any
		if err := json.Unmarshal(data, &body); err != nil {
			abortWith(c, apperr.Validation(apperr.MsgInvalidJSON))
			return
		}

		if fieldErrs := schema.Validate(body); len(fieldErrs) > 0 {
			abortWith(c, apperr.Validation(apperr.MsgInvalidJSON, fieldErrs...))
			return
		}

		c.Set(bodyKey, body)
		c.Next()
	}
}

// BookID returns the id-format stage. The :bookId path parameter must match
// the store's native identifier format (24 hex characters); a mismatch
// raises a Validation error before any store lookup happens.
func BookID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("bookId")
		if !validate.HexID(id) {
			abortWith(c, apperr.Validation(apperr.MsgBookNotFound, apperr.FieldError{
				Field:   "bookId",
				Message: "must be a 24 character hexadecimal string",
			}))
			return
		}
		c.Next()
	}
}

// RequireBook returns the existence stage. It looks the book up once and
// attaches the record to the request context, so the handler consumes it
// directly instead of re-fetching. A missing book raises NotFound.
func RequireBook(books BookGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := books.Get(c.Request.Context(), c.Param("bookId"))
		if err != nil {
			abortWith(c, apperr.From(err))
			return
		}
		c.Set(bookKey, b)
		c.Next()
	}
}

// BodyFrom returns the decoded request body stored by ValidateBody.
func BodyFrom(c *gin.Context) map[string]any {
	if v, ok := c.Get(bodyKey); ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// BookFrom returns the book attached by RequireBook, or nil.
func BookFrom(c *gin.Context) *domain.Book {
	if v, ok := c.Get(bookKey); ok {
		if b, ok := v.(*domain.Book); ok {
			return b
		}
	}
	return nil
}

// AuthUserFrom returns the user attached by Authenticate or APIKey, or nil.
func AuthUserFrom(c *gin.Context) *domain.User {
	if v, ok := c.Get(authUserKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
