package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/news-aggregator-api/internal/apierr"
)

func TestNormalizeDriverErrorCodes(t *testing.T) {
	tests := []struct {
		code       pq.ErrorCode
		wantStatus int
		wantMsg    string
	}{
		{"22P02", http.StatusBadRequest, "Bad request: invalid input syntax."},
		{"23502", http.StatusBadRequest, "Insertion error: not null violation."},
		{"23503", http.StatusNotFound, "Not found: foreign key violation."},
		{"23505", http.StatusConflict, "Conflict: duplicate key values not allowed."},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			resp := apierr.Normalize(&pq.Error{Code: tt.code})
			if resp.Status != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, resp.Status)
			}
			if resp.Msg != tt.wantMsg {
				t.Errorf("Expected msg %q, got %q", tt.wantMsg, resp.Msg)
			}
		})
	}
}

func TestNormalizeUnrecognizedDriverCodePassesThrough(t *testing.T) {
	// 42P01 (undefined table) is not in the mapping; the driver
	// normalizer must pass it on and the fallback must claim it.
	if _, ok := apierr.NormalizeDriverError(&pq.Error{Code: "42P01"}); ok {
		t.Fatal("Driver normalizer should not claim unmapped codes")
	}

	resp := apierr.Normalize(&pq.Error{Code: "42P01"})
	if resp.Status != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", resp.Status)
	}
	if resp.Msg != "Internal Server Error" {
		t.Errorf("Expected generic message, got %q", resp.Msg)
	}
}

func TestNormalizeDomainErrorVerbatim(t *testing.T) {
	resp := apierr.Normalize(apierr.New(http.StatusBadRequest, "Bad Request: Custom Error"))
	if resp.Status != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.Status)
	}
	if resp.Msg != "Bad Request: Custom Error" {
		t.Errorf("Expected custom message, got %q", resp.Msg)
	}
}

func TestNormalizeWrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("deleting comment: %w", apierr.ErrCommentNotFound)
	resp := apierr.Normalize(wrapped)
	if resp.Status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.Status)
	}
	if resp.Msg != "Comment Not Found" {
		t.Errorf("Expected %q, got %q", "Comment Not Found", resp.Msg)
	}
}

func TestNormalizeUnexpectedError(t *testing.T) {
	resp := apierr.Normalize(errors.New("An unexpected error occurred"))
	if resp.Status != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", resp.Status)
	}
	if resp.Msg != "Internal Server Error" {
		t.Errorf("Internal details must not leak, got %q", resp.Msg)
	}
}

func TestDomainErrorPrecedesFallbackButNotDriver(t *testing.T) {
	// A pq error is claimed by the driver normalizer even though the
	// chain also contains the domain and fallback stages.
	if _, ok := apierr.NormalizeDomainError(&pq.Error{Code: "23505"}); ok {
		t.Fatal("Domain normalizer should not claim driver errors")
	}
}
