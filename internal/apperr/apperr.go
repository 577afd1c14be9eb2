// Package apperr defines the application-wide error taxonomy shared by the
// validation middleware chain, the service layer, and the central HTTP error
// handler.
//
// Every failure the API can surface is represented by a single tagged type,
// Error, discriminated by Kind. Callers never branch on concrete error types
// or inheritance; they inspect the Kind. Each Kind carries a fixed HTTP
// status code, so the mapping from failure to response status lives in one
// place regardless of where the error was raised.
//
// Conventions:
//   - Construction goes through the Kind-specific helpers (Validation,
//     NotFound, …) so the status code is always consistent with the Kind.
//   - An Error is immutable once constructed; WithStatus returns a copy.
//   - Unknown errors are normalized by From, which never leaks internal
//     details to the client.
package apperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Kind identifies an error category. The set is closed; every Error carries
// exactly one Kind and the central error handler renders it as the "type"
// field of the error envelope.
type Kind string

// The closed set of error categories.
const (
	KindContentType     Kind = "ContentType"
	KindValidation      Kind = "Validation"
	KindNotFound        Kind = "NotFound"
	KindAlreadyExists   Kind = "AlreadyExists"
	KindUnauthenticated Kind = "Unauthenticated"
	KindInternal        Kind = "Internal"
)

// kindStatus is the fixed Kind → HTTP status table.
var kindStatus = map[Kind]int{
	KindContentType:     http.StatusBadRequest,
	KindValidation:      http.StatusBadRequest,
	KindNotFound:        http.StatusNotFound,
	KindAlreadyExists:   http.StatusConflict,
	KindUnauthenticated: http.StatusUnauthorized,
	KindInternal:        http.StatusInternalServerError,
}

// DefaultStatus returns the HTTP status code associated with the Kind.
// Unknown kinds map to 500.
func (k Kind) DefaultStatus() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// FieldError describes a single failing field of a request body or path
// parameter. A non-empty list of these becomes the innerErrors of a
// Validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the tagged error value used across the whole request pipeline.
// Status is always consistent with Kind except for the deliberate
// "incorrect address" case, where a Validation-kind error is served with
// status 404 (see WithStatus).
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Inner   []FieldError
}

// Error implements the error interface.
func (e *Error) Error() string { return string(e.Kind) + ": " + e.Message }

// WithStatus returns a copy of e with an overridden HTTP status. The
// receiver is left untouched.
func (e *Error) WithStatus(code int) *Error {
	cp := *e
	cp.Status = code
	return &cp
}

// New constructs an Error of the given kind with the kind's default status.
func New(kind Kind, message string, inner ...FieldError) *Error {
	return &Error{Kind: kind, Message: message, Status: kind.DefaultStatus(), Inner: inner}
}

// ContentType reports an unsupported Content-Type header.
func ContentType(message string) *Error { return New(KindContentType, message) }

// Validation reports a failed structural or schema check. The optional inner
// errors list the individual failing fields.
func Validation(message string, inner ...FieldError) *Error {
	return New(KindValidation, message, inner...)
}

// NotFound reports a syntactically valid identifier with no matching record.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// AlreadyExists reports a violated uniqueness constraint.
func AlreadyExists(message string) *Error { return New(KindAlreadyExists, message) }

// Unauthenticated reports a failed credential or API-key check.
func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }

// Internal reports an unclassified server-side failure. The message is the
// generic one; the raw cause is only ever logged, never returned.
func Internal() *Error { return New(KindInternal, MsgInternal) }

// From normalizes an arbitrary error into an *Error:
//
//   - an *Error passes through unchanged;
//   - malformed JSON from the body decoder becomes a Validation error;
//   - a missing record surfacing straight from the store becomes NotFound;
//   - everything else becomes Internal with a generic message.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return Validation(MsgInvalidJSON)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(MsgBookNotFound)
	}

	return Internal()
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
