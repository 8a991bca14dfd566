package repository

import (
	"context"

	"tastebite-backend/internal/domains/recipe/model"
)

// RepositoryInterface is the recipe data-access contract.
type RepositoryInterface interface {
	// List applies the resolved single-active filter. Rows may contain
	// duplicates when the OR-search matches multiple columns; the service
	// deduplicates by ID.
	List(ctx context.Context, filter model.RecipeFilter) ([]model.Recipe, error)

	// GetAll fetches every recipe for the in-memory ingredient matcher.
	GetAll(ctx context.Context) ([]model.Recipe, error)

	// Index returns a page of the catalogue plus the total row count.
	Index(ctx context.Context, req model.IndexRequest) ([]model.Recipe, int, error)

	// GetByIdentifier looks a recipe up by numeric ID or by slug.
	GetByIdentifier(ctx context.Context, identifier string) (*model.Recipe, error)

	GetByID(ctx context.Context, id int64) (*model.Recipe, error)

	// ListByIDs fetches the given recipes ordered by publish date descending.
	ListByIDs(ctx context.Context, ids []int64) ([]model.Recipe, error)

	Exists(ctx context.Context, id int64) (bool, error)

	SlugExists(ctx context.Context, slug string) (bool, error)

	Create(ctx context.Context, recipe *model.Recipe) (int64, error)

	Update(ctx context.Context, recipe *model.Recipe) error

	Delete(ctx context.Context, id int64) error

	UpdateImagePath(ctx context.Context, id int64, imagePath string) error
}
