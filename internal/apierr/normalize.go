package apierr

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Response is the terminal outcome of normalizing an error.
type Response struct {
	Status int
	Msg    string
}

// Normalizer inspects an error and either claims it, producing the final
// response, or passes it to the next normalizer in the chain.
type Normalizer func(err error) (Response, bool)

// chain is ordered: driver codes first, then domain errors, then the
// fallback, which claims everything.
var chain = []Normalizer{
	NormalizeDriverError,
	NormalizeDomainError,
	normalizeUnexpected,
}

// Normalize runs err through the normalizer chain and returns the HTTP
// response to send. It never fails; unclassified errors become a 500.
func Normalize(err error) Response {
	for _, n := range chain {
		if resp, ok := n(err); ok {
			return resp
		}
	}
	// normalizeUnexpected claims everything, so this is unreachable.
	return Response{Status: http.StatusInternalServerError, Msg: "Internal Server Error"}
}

// NormalizeDriverError maps PostgreSQL error codes to responses.
// Unrecognized codes pass through to the next normalizer.
func NormalizeDriverError(err error) (Response, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return Response{}, false
	}

	switch pqErr.Code {
	case "22P02":
		return Response{Status: http.StatusBadRequest, Msg: "Bad request: invalid input syntax."}, true
	case "23502":
		return Response{Status: http.StatusBadRequest, Msg: "Insertion error: not null violation."}, true
	case "23503":
		return Response{Status: http.StatusNotFound, Msg: "Not found: foreign key violation."}, true
	case "23505":
		return Response{Status: http.StatusConflict, Msg: "Conflict: duplicate key values not allowed."}, true
	default:
		return Response{}, false
	}
}

// NormalizeDomainError emits a domain *Error's status and message verbatim.
func NormalizeDomainError(err error) (Response, bool) {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return Response{}, false
	}
	return Response{Status: domainErr.Status, Msg: domainErr.Msg}, true
}

// normalizeUnexpected is the terminal stage: anything reaching it is an
// unexpected failure and must not leak internals to the client.
func normalizeUnexpected(err error) (Response, bool) {
	return Response{Status: http.StatusInternalServerError, Msg: "Internal Server Error"}, true
}
