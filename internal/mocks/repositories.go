package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/news-aggregator-api/internal/apierr"
	"github.com/news-aggregator-api/internal/models"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics    []models.Topic
	ListError error
	ListCalls int
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: []models.Topic{}}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	m.ListCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Topics, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles     map[int]*models.Article
	CommentCount map[int]int
	ListError    error
	GetError     error
	UpdateError  error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:     make(map[int]*models.Article),
		CommentCount: make(map[int]int),
	}
}

func (m *MockArticleRepository) List(ctx context.Context) ([]models.ArticleSummary, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	if len(m.Articles) == 0 {
		return nil, apierr.ErrNoArticles
	}

	var summaries []models.ArticleSummary
	for _, a := range m.Articles {
		summaries = append(summaries, models.ArticleSummary{
			ArticleID:     a.ArticleID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  m.CommentCount[a.ArticleID],
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, apierr.ErrArticleRowMissing
	}
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, apierr.ErrPatchTargetGone
	}
	article.Votes += delta
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := m.Articles[id]
	return ok, nil
}

// MockCommentRepository is a mock implementation of CommentRepository.
// ArticleIDs and Usernames stand in for the referenced tables the real
// repository gates its inserts on.
type MockCommentRepository struct {
	Comments    map[int]*models.Comment
	ArticleIDs  map[int]bool
	Usernames   map[string]bool
	NextID      int
	ListError   error
	InsertError error
	DeleteError error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments:   make(map[int]*models.Comment),
		ArticleIDs: make(map[int]bool),
		Usernames:  make(map[string]bool),
		NextID:     1,
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	comments := []models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID int, username, body string) (*models.Comment, error) {
	if m.InsertError != nil {
		return nil, m.InsertError
	}
	if !m.ArticleIDs[articleID] {
		return nil, apierr.ErrArticleNotFound
	}
	if !m.Usernames[username] {
		return nil, apierr.ErrUserNotFound
	}

	comment := &models.Comment{
		CommentID: m.NextID,
		ArticleID: articleID,
		Author:    username,
		Body:      body,
		Votes:     0,
		CreatedAt: time.Now(),
	}
	m.Comments[comment.CommentID] = comment
	m.NextID++

	copied := *comment
	return &copied, nil
}

func (m *MockCommentRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	if m.DeleteError != nil {
		return 0, m.DeleteError
	}
	if _, ok := m.Comments[id]; !ok {
		return 0, nil
	}
	delete(m.Comments, id)
	return 1, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Usernames   map[string]bool
	ExistsError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Usernames: make(map[string]bool)}
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	if m.ExistsError != nil {
		return false, m.ExistsError
	}
	return m.Usernames[username], nil
}
