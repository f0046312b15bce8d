package repository

import (
	"context"

	"github.com/news-aggregator-api/internal/apierr"
	"github.com/news-aggregator-api/internal/database"
	"github.com/news-aggregator-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository. It
// takes the article and user repositories for the existence gates that
// precede an insert.
type commentRepo struct {
	db       *database.DB
	articles ArticleRepository
	users    UserRepository
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB, articles ArticleRepository, users UserRepository) CommentRepository {
	return &commentRepo{db: db, articles: articles, users: users}
}

// ListByArticle retrieves all comments on an article, most recent first.
// An article with no comments yields an empty slice, not an error.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(
			&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Insert creates a comment after confirming the referenced article and
// user exist, so a miss surfaces as a specific not-found rather than a
// raw constraint violation. The schema's foreign keys still back-stop
// the gap between check and insert; a racing write surfaces through the
// driver-error mapping instead.
func (r *commentRepo) Insert(ctx context.Context, articleID int, username, body string) (*models.Comment, error) {
	articleExists, err := r.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !articleExists {
		return nil, apierr.ErrArticleNotFound
	}

	userExists, err := r.users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, apierr.ErrUserNotFound
	}

	query := `
		INSERT INTO comments (article_id, author, body, votes)
		VALUES ($1, $2, $3, 0)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var comment models.Comment
	err = r.db.QueryRowContext(ctx, query, articleID, username, body).Scan(
		&comment.CommentID, &comment.ArticleID, &comment.Author,
		&comment.Body, &comment.Votes, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// DeleteByID deletes the matching comment and returns the number of
// rows removed (0 or 1). The handler decides what 0 means.
func (r *commentRepo) DeleteByID(ctx context.Context, id int) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
