package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// endpointsDoc is the static description of the API surface served at
// GET /api. Kept in code next to the routes it describes.
var endpointsDoc = gin.H{
	"GET /api": gin.H{
		"description": "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": gin.H{
		"description": "serves an array of all topics",
		"exampleResponse": gin.H{
			"topics": []gin.H{{"slug": "football", "description": "Footie!"}},
		},
	},
	"GET /api/articles": gin.H{
		"description": "serves an array of all articles, most recent first, without bodies and with comment counts",
		"exampleResponse": gin.H{
			"articles": []gin.H{{
				"article_id":      1,
				"title":           "Seafood substitutions are increasing",
				"topic":           "cooking",
				"author":          "weegembump",
				"created_at":      "2018-05-30T15:59:13.341Z",
				"votes":           0,
				"article_img_url": "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg",
				"comment_count":   6,
			}},
		},
	},
	"GET /api/articles/:article_id": gin.H{
		"description": "serves a single article, body included",
	},
	"PATCH /api/articles/:article_id": gin.H{
		"description": "adjusts an article's vote count by inc_votes and serves the updated article",
		"exampleRequest": gin.H{
			"inc_votes": 5,
		},
	},
	"GET /api/articles/:article_id/comments": gin.H{
		"description": "serves an array of comments for the given article, most recent first",
	},
	"POST /api/articles/:article_id/comments": gin.H{
		"description": "adds a comment to the given article and serves the created comment",
		"exampleRequest": gin.H{
			"username": "butter_bridge",
			"body":     "super post!",
		},
	},
	"DELETE /api/comments/:comment_id": gin.H{
		"description": "deletes the given comment, responding with no content",
	},
}

// getEndpoints handles GET /api
func getEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": endpointsDoc})
}
