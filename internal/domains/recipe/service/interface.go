package service

import (
	"context"

	"github.com/google/uuid"

	"tastebite-backend/internal/domains/recipe/model"
)

// ServiceInterface defines recipe business logic operations.
type ServiceInterface interface {
	Load(ctx context.Context, filter model.RecipeFilter) ([]model.Recipe, error)
	FetchAvailable(ctx context.Context, available []string, ranked bool) ([]model.Recipe, error)
	Index(ctx context.Context, req model.IndexRequest) ([]model.Recipe, model.IndexMeta, error)
	Show(ctx context.Context, identifier string) (*model.Recipe, error)
	Create(ctx context.Context, req model.CreateRecipeRequest, userID uuid.UUID) (*model.Recipe, error)
	Update(ctx context.Context, id int64, req model.UpdateRecipeRequest) (*model.Recipe, error)
	Delete(ctx context.Context, id int64) error
	ExportToExcel(ctx context.Context) ([]byte, error)
}

// AuthoredRecorder records an authorship relation for newly created content.
// Implemented by the content repository; declared here to avoid a package
// cycle between the recipe and content domains.
type AuthoredRecorder interface {
	RecordAuthored(ctx context.Context, userID uuid.UUID, contentType string, contentID int64) error
}
