// Package handlers provides the HTTP handlers for the public API together
// with the uniform response envelope every endpoint uses.
//
// Every response on every route, success or failure, has the shape
//
//	{ "state": "success" | "error", "result": <payload> }
//
// where result is the domain payload on success and a serialized view of the
// application error on failure. The envelope is built here and nowhere else,
// so the shape cannot drift between routes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knazaryan/go-books-backend/internal/apperr"
)

// Envelope is the wrapper applied to every response body.
type Envelope struct {
	State  string `json:"state" example:"success"`
	Result any    `json:"result"`
}

// ErrorResult is the result payload of an error envelope. InnerErrors is
// omitted when the failure has no per-field detail.
type ErrorResult struct {
	ErrorMessage string             `json:"errorMessage" example:"Given JSON is incorrectly formatted or missing some information."`
	Type         string             `json:"type" example:"Validation"`
	StatusCode   int                `json:"statusCode" example:"400"`
	InnerErrors  []apperr.FieldError `json:"innerErrors,omitempty"`
}

// Success wraps a payload in a success envelope.
func Success(payload any) Envelope {
	return Envelope{State: "success", Result: payload}
}

// ErrorEnvelope wraps a serialized view of an application error in an error
// envelope. Nothing beyond kind, message, status and field errors is ever
// exposed.
func ErrorEnvelope(ae *apperr.Error) Envelope {
	return Envelope{
		State: "error",
		Result: ErrorResult{
			ErrorMessage: ae.Message,
			Type:         string(ae.Kind),
			StatusCode:   ae.Status,
			InnerErrors:  ae.Inner,
		},
	}
}

// respond writes a 200 success envelope. All successful operations answer
// with 200, matching the reference behavior of the API.
func respond(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, Success(payload))
}

// fail records err on the context and aborts; the central error handler
// renders the envelope. Handlers and middleware share this one propagation
// path, so no error is ever swallowed or double-written.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
