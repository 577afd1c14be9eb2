// Book HTTP handlers.
//
// This file exposes the REST endpoints for book resources:
//   - GET    /api/books           (list)
//   - POST   /api/books           (create)
//   - GET    /api/books/{bookId}  (fetch)
//   - PATCH  /api/books/{bookId}  (partial update)
//   - DELETE /api/books/{bookId}  (delete)
//
// Handlers are transport-thin: all validation, id-format, existence and
// authentication checks run in the per-route middleware chain before a
// handler executes, so a handler only consumes validated context values,
// calls the service, and wraps the result in the response envelope.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/knazaryan/go-books-backend/internal/domain"
	"github.com/knazaryan/go-books-backend/internal/http/middleware"
)

// BookService defines the book operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type BookService interface {
	// List returns all books in store insertion order.
	List(ctx context.Context) ([]domain.Book, error)
	// Create persists a new book, optionally linked to a creator.
	Create(ctx context.Context, data domain.BookData, creator *domain.User) (*domain.Book, error)
	// Update applies a partial update to an already fetched book.
	Update(ctx context.Context, b *domain.Book, data domain.BookData) (*domain.Book, error)
	// Delete removes an already fetched book.
	Delete(ctx context.Context, b *domain.Book) (*domain.Book, error)
}

// ListBooks godoc
// @ID          listBooks
// @Summary     List all books
// @Description Returns every book record as an array inside the success envelope.
// @Tags        Books
// @Produce     json
// @Success     200 {object} handlers.Envelope
// @Failure     500 {object} handlers.Envelope
// @Router      /api/books [get]
func (h *Handlers) ListBooks(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, books)
}

// CreateBook godoc
// @ID          createBook
// @Summary     Create a book
// @Description Creates a new book record. When an X-API-Key header is supplied it must resolve to a registered user, who is recorded as the creator.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string false "Creator API key"
// @Param       body body object true "Book payload: name, author, genre, publishYear, description?"
// @Success     200 {object} handlers.Envelope
// @Failure     400 {object} handlers.Envelope "Validation or content type error"
// @Failure     401 {object} handlers.Envelope "Unknown API key"
// @Router      /api/books [post]
func (h *Handlers) CreateBook(c *gin.Context) {
	body := middleware.BodyFrom(c)
	data := domain.BookData{
		Name:        strField(body, "name"),
		Author:      strField(body, "author"),
		Genre:       strField(body, "genre"),
		PublishYear: intField(body, "publishYear"),
		Description: strField(body, "description"),
	}

	b, err := h.books.Create(c.Request.Context(), data, middleware.AuthUserFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, b)
}

// GetBook godoc
// @ID          getBook
// @Summary     Fetch a book by id
// @Description Returns a single book. The id must be a 24 character hex token; a well-formed id with no matching record yields 404.
// @Tags        Books
// @Produce     json
// @Param       bookId path string true "Book ID (24 hex chars)"
// @Success     200 {object} handlers.Envelope
// @Failure     400 {object} handlers.Envelope "Malformed id"
// @Failure     404 {object} handlers.Envelope "No such book"
// @Router      /api/books/{bookId} [get]
func (h *Handlers) GetBook(c *gin.Context) {
	// The existence stage already fetched the record.
	respond(c, middleware.BookFrom(c))
}

// PatchBook godoc
// @ID          patchBook
// @Summary     Partially update a book
// @Description Applies the supplied subset of book fields to an existing record and returns the updated book.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       bookId path string true "Book ID (24 hex chars)"
// @Param       body body object true "Any subset of: name, author, genre, publishYear, description"
// @Success     200 {object} handlers.Envelope
// @Failure     400 {object} handlers.Envelope
// @Failure     404 {object} handlers.Envelope
// @Router      /api/books/{bookId} [patch]
func (h *Handlers) PatchBook(c *gin.Context) {
	body := middleware.BodyFrom(c)
	data := domain.BookData{
		Name:        strField(body, "name"),
		Author:      strField(body, "author"),
		Genre:       strField(body, "genre"),
		PublishYear: intField(body, "publishYear"),
		Description: strField(body, "description"),
	}

	b, err := h.books.Update(c.Request.Context(), middleware.BookFrom(c), data)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, b)
}

// DeleteBook godoc
// @ID          deleteBook
// @Summary     Delete a book
// @Description Removes a book record and returns the deleted book.
// @Tags        Books
// @Produce     json
// @Param       bookId path string true "Book ID (24 hex chars)"
// @Success     200 {object} handlers.Envelope
// @Failure     400 {object} handlers.Envelope
// @Failure     404 {object} handlers.Envelope
// @Router      /api/books/{bookId} [delete]
func (h *Handlers) DeleteBook(c *gin.Context) {
	b, err := h.books.Delete(c.Request.Context(), middleware.BookFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, b)
}

// strField returns a pointer to the string value of key, nil when absent.
// Types were already enforced by the schema stage.
func strField(body map[string]any, key string) *string {
	if v, ok := body[key].(string); ok {
		return &v
	}
	return nil
}

// intField returns a pointer to the int value of key, nil when absent.
func intField(body map[string]any, key string) *int {
	if v, ok := body[key].(float64); ok {
		n := int(v)
		return &n
	}
	return nil
}
