// User HTTP handlers.
//
// Endpoints:
//   - POST   /users/credentials  (verify credentials, return account data)
//   - POST   /users              (register)
//   - PATCH  /users              (update own account)
//   - DELETE /users              (delete own account)
//
// Credential verification happens in the Authenticate middleware stage; by
// the time these handlers run, the acting user is attached to the context.
package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/knazaryan/go-books-backend/internal/domain"
	"github.com/knazaryan/go-books-backend/internal/http/middleware"
	"github.com/knazaryan/go-books-backend/internal/services"
)

// UserService defines the account operations consumed by HTTP handlers.
type UserService interface {
	// Register creates a new account with a hashed password and fresh API key.
	Register(ctx context.Context, username, password, firstName, lastName string) (*domain.User, error)
	// Update applies optional profile/password changes to an authenticated user.
	Update(ctx context.Context, u *domain.User, upd services.UserUpdate) (*domain.User, error)
	// Delete removes an account by username.
	Delete(ctx context.Context, username string) error
}

// Handlers groups the HTTP endpoints for books and users. It depends on
// service interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	books BookService
	users UserService
}

// New constructs a Handlers instance bound to the given services.
func New(books BookService, users UserService) *Handlers {
	return &Handlers{books: books, users: users}
}

// Credentials godoc
// @ID          checkCredentials
// @Summary     Verify credentials
// @Description Verifies a username/password pair and returns the account data, including the API key. Unknown user and wrong password are indistinguishable.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body object true "Credentials: username, password"
// @Success     200 {object} handlers.Envelope
// @Failure     400 {object} handlers.Envelope
// @Failure     401 {object} handlers.Envelope
// @Router      /users/credentials [post]
func (h *Handlers) Credentials(c *gin.Context) {
	u := middleware.AuthUserFrom(c)
	respond(c, u.PublicView())
}

// Register godoc
// @ID          registerUser
// @Summary     Register a new user
// @Description Creates an account. The password is stored as a one-way hash and an API key is generated. A taken username yields 409 unless the payload also fails validation, in which case the validation error wins.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body object true "Registration: username, password, firstName, lastName"
// @Success     200 {object} handlers.Envelope
// @Failure     400 {object} handlers.Envelope
// @Failure     409 {object} handlers.Envelope "Username already taken"
// @Router      /users [post]
func (h *Handlers) Register(c *gin.Context) {
	body := middleware.BodyFrom(c)
	username, _ := body["username"].(string)
	password, _ := body["password"].(string)
	firstName, _ := body["firstName"].(string)
	lastName, _ := body["lastName"].(string)

	u, err := h.users.Register(c.Request.Context(), username, password, firstName, lastName)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, fmt.Sprintf("User %s successfully registered", u.Username))
}

// UpdateUser godoc
// @ID          updateUser
// @Summary     Update own account
// @Description Authenticates with username/password from the body and applies the optional firstName, lastName and newPassword fields.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body object true "username, password, firstName?, lastName?, newPassword?"
// @Success     200 {object} handlers.Envelope
// @Failure     400 {object} handlers.Envelope
// @Failure     401 {object} handlers.Envelope
// @Router      /users [patch]
func (h *Handlers) UpdateUser(c *gin.Context) {
	body := middleware.BodyFrom(c)
	upd := services.UserUpdate{
		FirstName:   strField(body, "firstName"),
		LastName:    strField(body, "lastName"),
		NewPassword: strField(body, "newPassword"),
	}

	u, err := h.users.Update(c.Request.Context(), middleware.AuthUserFrom(c), upd)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, u.PublicView())
}

// DeleteUser godoc
// @ID          deleteUser
// @Summary     Delete own account
// @Description Authenticates with username/password from the body and removes the account.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body object true "Credentials: username, password"
// @Success     200 {object} handlers.Envelope
// @Failure     400 {object} handlers.Envelope
// @Failure     401 {object} handlers.Envelope
// @Router      /users [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	u := middleware.AuthUserFrom(c)
	if err := h.users.Delete(c.Request.Context(), u.Username); err != nil {
		fail(c, err)
		return
	}
	respond(c, fmt.Sprintf("User %s successfully deleted", u.Username))
}
