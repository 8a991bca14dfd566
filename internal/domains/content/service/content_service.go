package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	articlemodel "tastebite-backend/internal/domains/article/model"
	articlerepo "tastebite-backend/internal/domains/article/repository"
	"tastebite-backend/internal/domains/content/model"
	"tastebite-backend/internal/domains/content/repository"
	recipemodel "tastebite-backend/internal/domains/recipe/model"
	reciperepo "tastebite-backend/internal/domains/recipe/repository"
	"tastebite-backend/internal/shared"
)

// ServiceInterface defines the favourites and user-content operations.
type ServiceInterface interface {
	// Toggle flips the favourite state of one piece of content and returns
	// the resulting favourite ID list plus the new state.
	Toggle(ctx context.Context, userID uuid.UUID, rawType string, contentID int64) (*model.ToggleResult, error)

	// Status reports whether the content is currently favourited.
	Status(ctx context.Context, userID uuid.UUID, rawType string, contentID int64) (bool, error)

	// ShowAll returns one page of the user's favourited or authored content.
	ShowAll(ctx context.Context, userID uuid.UUID, rawType, rawCategory string, page, perPage int) (*model.ShowAllResult, error)
}

type contentService struct {
	repo     repository.RepositoryInterface
	recipes  reciperepo.RepositoryInterface
	articles articlerepo.RepositoryInterface
	logger   zerolog.Logger
}

func NewContentService(
	repo repository.RepositoryInterface,
	recipes reciperepo.RepositoryInterface,
	articles articlerepo.RepositoryInterface,
	logger zerolog.Logger,
) ServiceInterface {
	return &contentService{
		repo:     repo,
		recipes:  recipes,
		articles: articles,
		logger:   logger,
	}
}

func (s *contentService) Toggle(ctx context.Context, userID uuid.UUID, rawType string, contentID int64) (*model.ToggleResult, error) {
	contentType := model.NormalizeContentType(rawType)

	if err := s.assertExists(ctx, contentType, contentID); err != nil {
		return nil, err
	}

	favourited, err := s.repo.ToggleFavourite(ctx, userID, contentType, contentID)
	if err != nil {
		return nil, err
	}

	favourites, err := s.repo.FavouriteIDs(ctx, userID, contentType)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("content_type", contentType).
		Int64("content_id", contentID).
		Bool("favourited", favourited).
		Msg("favourite toggled")

	return &model.ToggleResult{Favourites: favourites, IsFavorited: favourited}, nil
}

func (s *contentService) Status(ctx context.Context, userID uuid.UUID, rawType string, contentID int64) (bool, error) {
	return s.repo.IsFavourited(ctx, userID, model.NormalizeContentType(rawType), contentID)
}

func (s *contentService) ShowAll(ctx context.Context, userID uuid.UUID, rawType, rawCategory string, page, perPage int) (*model.ShowAllResult, error) {
	contentType := model.NormalizeContentType(rawType)
	kind := model.NormalizeCategory(rawCategory)
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	total, err := s.repo.Count(ctx, userID, contentType, kind)
	if err != nil {
		return nil, err
	}

	ids, err := s.repo.IDsPage(ctx, userID, contentType, kind, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	items, err := s.fetchItems(ctx, contentType, ids)
	if err != nil {
		return nil, err
	}

	return &model.ShowAllResult{
		Items:      items,
		Type:       contentType,
		Category:   kind,
		Pagination: model.NewPaginationMeta(total, page, perPage),
	}, nil
}

// fetchItems resolves the relation IDs to full rows. Articles are returned
// in their card shape, recipes as stored.
func (s *contentService) fetchItems(ctx context.Context, contentType string, ids []int64) (interface{}, error) {
	if contentType == shared.ContentTypeRecipe {
		recipes, err := s.recipes.ListByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if recipes == nil {
			recipes = []recipemodel.Recipe{}
		}
		return recipes, nil
	}

	articles, err := s.articles.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]articlemodel.ListItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, a.ToListItem())
	}
	return items, nil
}

func (s *contentService) assertExists(ctx context.Context, contentType string, contentID int64) error {
	var exists bool
	var err error
	if contentType == shared.ContentTypeRecipe {
		exists, err = s.recipes.Exists(ctx, contentID)
	} else {
		exists, err = s.articles.Exists(ctx, contentID)
	}
	if err != nil {
		return fmt.Errorf("failed to check content: %w", err)
	}
	if !exists {
		return model.ErrContentNotFound
	}
	return nil
}
