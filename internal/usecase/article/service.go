package article

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"knowbase/internal/domain/entity"
	"knowbase/internal/pkg/search"
	"knowbase/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// Tags are already normalized by the transport layer.
type CreateInput struct {
	Title string
	Body  string
	Tags  []string
}

// Service provides ownership-checked article use cases. Every operation
// takes the authenticated caller's user id and scopes reads and mutations
// to records that caller owns.
type Service struct {
	Repo repository.ArticleRepository

	// Now and NewID allow tests to pin timestamps and identifiers.
	// When nil, time.Now and uuid.NewString are used.
	Now   func() time.Time
	NewID func() string
}

// List retrieves the caller's articles matching the query, newest first.
// An empty result is a successful outcome, not an error.
func (s *Service) List(ctx context.Context, ownerID string, q search.Query) ([]*entity.Article, error) {
	articles, err := s.Repo.ListByOwner(ctx, ownerID, q)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article owned by the caller.
// Returns ErrArticleNotFound when the id is absent OR owned by another
// user; the read path never distinguishes the two.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.GetByID(ctx, id, &ownerID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create validates the input and persists a new article owned by the caller.
// The identifier and creation timestamp are assigned server-side and are
// immutable afterwards.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Body == "" {
		return nil, &entity.ValidationError{Field: "body", Message: "is required"}
	}

	art := &entity.Article{
		ID:        s.newID(),
		OwnerID:   ownerID,
		Title:     in.Title,
		Body:      in.Body,
		Tags:      in.Tags,
		CreatedAt: s.now(),
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Delete removes the caller's article. Unlike Get, this path discloses
// existence: an absent id yields ErrArticleNotFound while an article owned
// by another user yields ErrNotOwner, and the record is left untouched.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if id == "" {
		return ErrInvalidArticleID
	}

	article, err := s.Repo.GetByID(ctx, id, nil)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if article == nil {
		return ErrArticleNotFound
	}
	if article.OwnerID != ownerID {
		return ErrNotOwner
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
