package repository

import (
	"context"

	"github.com/news-aggregator-api/internal/database"
	"github.com/news-aggregator-api/internal/models"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context) ([]models.ArticleSummary, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Insert(ctx context.Context, articleID int, username, body string) (*models.Comment, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	Article ArticleRepository
	Comment CommentRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	articleRepo := NewArticleRepo(db)
	userRepo := NewUserRepo(db)
	return &Repositories{
		Topic:   NewTopicRepo(db),
		Article: articleRepo,
		Comment: NewCommentRepo(db, articleRepo, userRepo),
		User:    userRepo,
	}
}
