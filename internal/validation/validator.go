// Package validation holds the pure per-endpoint input checks that run
// before any data access, so malformed input never reaches the store.
package validation

import (
	"strconv"

	"github.com/news-aggregator-api/internal/apierr"
)

// ArticleID parses an article id path parameter. Anything that is not a
// base-10 integer is rejected with the article-route message.
func ArticleID(param string) (int, error) {
	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, apierr.ErrInvalidArticleID
	}
	return id, nil
}

// CommentID parses a comment id path parameter.
func CommentID(param string) (int, error) {
	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, apierr.ErrInvalidCommentID
	}
	return id, nil
}

// CommentInput checks the comment-creation body: both username and body
// must be present and non-empty.
func CommentInput(username, body string) error {
	if username == "" || body == "" {
		return apierr.ErrMissingFields
	}
	return nil
}

// VoteDelta checks the vote-patch body: inc_votes must have been supplied
// as a number. The caller passes nil when the field was absent or failed
// to bind as an integer.
func VoteDelta(incVotes *int) (int, error) {
	if incVotes == nil {
		return 0, apierr.ErrInvalidVotes
	}
	return *incVotes, nil
}
