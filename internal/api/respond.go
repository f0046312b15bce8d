package api

import (
	"github.com/gin-gonic/gin"
	"github.com/news-aggregator-api/internal/apierr"
	"github.com/rs/zerolog"
)

// respondError runs an error through the normalizer chain and writes the
// resulting {"msg": ...} body. This is the only place handlers turn
// rejections into responses, so status/message policy stays centralized.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	resp := apierr.Normalize(err)
	if resp.Status >= 500 {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString("request_id")).
			Msg("Unexpected error")
	}
	c.JSON(resp.Status, gin.H{"msg": resp.Msg})
}
