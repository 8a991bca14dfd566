package repository

import (
	"context"

	"tastebite-backend/internal/domains/article/model"
)

// RepositoryInterface is the article data-access contract.
type RepositoryInterface interface {
	// List returns articles newest first. A non-empty search term matches
	// title or author by substring; otherwise a non-empty category matches
	// exactly. Search wins when both are present.
	List(ctx context.Context, search, category string) ([]model.Article, error)

	// Index returns one page of the catalogue plus the total row count,
	// newest first.
	Index(ctx context.Context, limit, offset int) ([]model.Article, int, error)

	// GetByIdentifier looks an article up by numeric ID or by slug.
	GetByIdentifier(ctx context.Context, identifier string) (*model.Article, error)

	GetByID(ctx context.Context, id int64) (*model.Article, error)

	// ListByIDs fetches the given articles ordered by publish date descending.
	ListByIDs(ctx context.Context, ids []int64) ([]model.Article, error)

	Exists(ctx context.Context, id int64) (bool, error)

	SlugExists(ctx context.Context, slug string) (bool, error)

	Create(ctx context.Context, article *model.Article) (int64, error)

	Update(ctx context.Context, article *model.Article) error

	Delete(ctx context.Context, id int64) error
}
