package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-aggregator-api/internal/apierr"
	"github.com/news-aggregator-api/internal/database"
	"github.com/news-aggregator-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List retrieves all article summaries with their comment counts, most
// recent first. The descending created_at order is part of the API
// contract, not a presentation choice.
func (r *articleRepo) List(ctx context.Context) ([]models.ArticleSummary, error) {
	query := `
		SELECT
			articles.article_id,
			articles.title,
			articles.topic,
			articles.author,
			articles.created_at,
			articles.votes,
			articles.article_img_url,
			COUNT(comments.comment_id)::INTEGER AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		GROUP BY articles.article_id
		ORDER BY articles.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.ArticleSummary
	for rows.Next() {
		var a models.ArticleSummary
		err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// An empty article set is treated as a not-found condition on this
	// route; the comments listing deliberately does not do the same.
	if len(articles) == 0 {
		return nil, apierr.ErrNoArticles
	}

	return articles, nil
}

// GetByID retrieves a full article, body included
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT article_id, title, topic, author, body, created_at, votes, article_img_url
		FROM articles WHERE article_id = $1
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author,
		&article.Body, &article.CreatedAt, &article.Votes, &article.ArticleImgURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apierr.ErrArticleRowMissing
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// UpdateVotes applies a signed delta to an article's vote count and
// returns the updated row. A single statement, so concurrent patches
// compose instead of clobbering each other.
func (r *articleRepo) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author,
		&article.Body, &article.CreatedAt, &article.Votes, &article.ArticleImgURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apierr.ErrPatchTargetGone
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, err
}
