package validation_test

import (
	"errors"
	"testing"

	"github.com/news-aggregator-api/internal/apierr"
	"github.com/news-aggregator-api/internal/validation"
)

func TestArticleID(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		wantID  int
		wantErr error
	}{
		{"valid id", "1", 1, nil},
		{"large id", "999999", 999999, nil},
		{"negative id parses", "-5", -5, nil},
		{"non-numeric", "banana", 0, apierr.ErrInvalidArticleID},
		{"float", "1.5", 0, apierr.ErrInvalidArticleID},
		{"empty", "", 0, apierr.ErrInvalidArticleID},
		{"trailing garbage", "1abc", 0, apierr.ErrInvalidArticleID},
		{"hex not accepted", "0x10", 0, apierr.ErrInvalidArticleID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := validation.ArticleID(tt.param)
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if err == nil && id != tt.wantID {
				t.Errorf("Expected id %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestCommentID(t *testing.T) {
	if _, err := validation.CommentID("7"); err != nil {
		t.Errorf("Expected valid comment id, got %v", err)
	}

	_, err := validation.CommentID("not-an-id")
	if err != apierr.ErrInvalidCommentID {
		t.Errorf("Expected ErrInvalidCommentID, got %v", err)
	}
	var domainErr *apierr.Error
	if !errors.As(err, &domainErr) || domainErr.Msg != "Bad Request" {
		t.Errorf("Comment route uses the generic message, got %v", err)
	}
}

func TestCommentInput(t *testing.T) {
	tests := []struct {
		name     string
		username string
		body     string
		wantErr  error
	}{
		{"both present", "butter_bridge", "super post!", nil},
		{"missing username", "", "super post!", apierr.ErrMissingFields},
		{"missing body", "butter_bridge", "", apierr.ErrMissingFields},
		{"both missing", "", "", apierr.ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validation.CommentInput(tt.username, tt.body); err != tt.wantErr {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestVoteDelta(t *testing.T) {
	five := 5
	minusFive := -5

	if delta, err := validation.VoteDelta(&five); err != nil || delta != 5 {
		t.Errorf("Expected delta 5, got %d (%v)", delta, err)
	}
	if delta, err := validation.VoteDelta(&minusFive); err != nil || delta != -5 {
		t.Errorf("Expected delta -5, got %d (%v)", delta, err)
	}
	if _, err := validation.VoteDelta(nil); err != apierr.ErrInvalidVotes {
		t.Errorf("Expected ErrInvalidVotes for missing delta, got %v", err)
	}
}
