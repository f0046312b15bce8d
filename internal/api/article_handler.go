package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-aggregator-api/internal/repository"
	"github.com/news-aggregator-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(repos *repository.Repositories, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		repos: repos,
		log:   log.With().Str("handler", "article").Logger(),
	}
}

// GetArticles handles GET /api/articles
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.repos.Article.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleByID handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	id, err := validation.ArticleID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.repos.Article.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// patchVotesRequest is the PATCH body. IncVotes is a pointer so a
// missing or non-numeric field is distinguishable after binding.
type patchVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// PatchArticleVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchArticleVotes(c *gin.Context) {
	id, err := validation.ArticleID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req patchVotesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		req.IncVotes = nil
	}
	delta, err := validation.VoteDelta(req.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.repos.Article.UpdateVotes(c.Request.Context(), id, delta)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}
