// Package apierr defines the application error taxonomy and the ordered
// chain of normalizers that turn any error into an HTTP status and a
// client-safe message. All status/message decisions for store-origin and
// domain errors live here; handlers never re-interpret rejections.
package apierr

import (
	"fmt"
	"net/http"
)

// Error is a domain error carrying the exact status and message to send
// to the client. It is created at the point of failure, not inferred
// later from error shape.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Msg)
}

// New returns a domain error with the given status and message.
func New(status int, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

// Input-validation errors, raised before any data access.
var (
	ErrInvalidArticleID = New(http.StatusBadRequest, "Invalid article ID")
	ErrInvalidCommentID = New(http.StatusBadRequest, "Bad Request")
	ErrInvalidVotes     = New(http.StatusBadRequest, "Bad Request")
	ErrMissingFields    = New(http.StatusBadRequest, "Username and comment are required")
)

// Not-found errors, raised by the data access layer when a query yields
// no match. Messages differ per route; that per-route text is part of
// the API contract.
var (
	ErrArticleRowMissing = New(http.StatusNotFound, "Not Found")
	ErrNoArticles        = New(http.StatusNotFound, "Not Found")
	ErrArticleNotFound   = New(http.StatusNotFound, "Article not found")
	ErrPatchTargetGone   = New(http.StatusNotFound, "Article Not Found")
	ErrUserNotFound      = New(http.StatusNotFound, "Username not found")
	ErrCommentNotFound   = New(http.StatusNotFound, "Comment Not Found")
)
