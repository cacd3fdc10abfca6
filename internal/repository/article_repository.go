// Package repository declares persistence interfaces consumed by the use case layer.
package repository

import (
	"context"

	"knowbase/internal/domain/entity"

	"knowbase/internal/pkg/search"
)

// ArticleRepository is the persistence abstraction over article records.
//
// GetByID with a non-nil owner returns (nil, nil) when the record exists
// under a different owner, exactly as it does for an absent id. The read
// path deliberately cannot tell "not found" from "not yours", so existence
// is never leaked to non-owners. Delete is unconditional at this layer;
// ownership enforcement on mutation belongs to the service.
type ArticleRepository interface {
	// GetByID returns the article with the given id, or (nil, nil) when no
	// matching record is visible. When owner is non-nil the lookup is
	// additionally filtered by owner.
	GetByID(ctx context.Context, id string, owner *string) (*entity.Article, error)

	// ListByOwner returns the owner's articles matching q, ordered newest
	// first by creation timestamp with id as the deterministic tie-break.
	ListByOwner(ctx context.Context, ownerID string, q search.Query) ([]*entity.Article, error)

	// Create persists a fully populated article. ID and CreatedAt are
	// assigned by the caller before the call and are immutable afterwards.
	Create(ctx context.Context, article *entity.Article) error

	// Delete removes the record with the given id regardless of owner.
	Delete(ctx context.Context, id string) error
}
