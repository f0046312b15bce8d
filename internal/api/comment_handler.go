package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-aggregator-api/internal/apierr"
	"github.com/news-aggregator-api/internal/repository"
	"github.com/news-aggregator-api/internal/validation"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(repos *repository.Repositories, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		repos: repos,
		log:   log.With().Str("handler", "comment").Logger(),
	}
}

// GetCommentsByArticle handles GET /api/articles/:article_id/comments.
// The article must exist; an existing article with no comments is a 200
// with an empty array.
func (h *CommentHandler) GetCommentsByArticle(c *gin.Context) {
	id, err := validation.ArticleID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	ctx := c.Request.Context()

	exists, err := h.repos.Article.Exists(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !exists {
		respondError(c, h.log, apierr.ErrArticleNotFound)
		return
	}

	comments, err := h.repos.Comment.ListByArticle(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// postCommentRequest is the comment-creation body
type postCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// PostComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) PostComment(c *gin.Context) {
	id, err := validation.ArticleID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req postCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		respondError(c, h.log, apierr.ErrMissingFields)
		return
	}
	if err := validation.CommentInput(req.Username, req.Body); err != nil {
		respondError(c, h.log, err)
		return
	}

	comment, err := h.repos.Comment.Insert(c.Request.Context(), id, req.Username, req.Body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := validation.CommentID(c.Param("comment_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	deleted, err := h.repos.Comment.DeleteByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if deleted == 0 {
		respondError(c, h.log, apierr.ErrCommentNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}
