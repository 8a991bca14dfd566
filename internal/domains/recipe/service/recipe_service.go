package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"tastebite-backend/internal/domains/recipe/model"
	"tastebite-backend/internal/domains/recipe/repository"
	"tastebite-backend/internal/shared"
	"tastebite-backend/internal/shared/utils"
	"tastebite-backend/pkg/cache"
)

const listCacheTTL = 10 * time.Minute

type recipeService struct {
	repo     repository.RepositoryInterface
	cache    cache.Cache
	authored AuthoredRecorder
	queue    *asynq.Client
	logger   zerolog.Logger
}

// NewRecipeService creates a recipe service. queue may be nil in tests, in
// which case image processing is skipped.
func NewRecipeService(
	repo repository.RepositoryInterface,
	cache cache.Cache,
	authored AuthoredRecorder,
	queue *asynq.Client,
	logger zerolog.Logger,
) ServiceInterface {
	return &recipeService{
		repo:     repo,
		cache:    cache,
		authored: authored,
		queue:    queue,
		logger:   logger,
	}
}

// Load returns the filtered recipe list, cache-aside with a short TTL.
// Duplicate rows from the multi-column search are collapsed by ID, first
// occurrence wins.
func (s *recipeService) Load(ctx context.Context, filter model.RecipeFilter) ([]model.Recipe, error) {
	cacheKey := model.GenerateListCacheKey(filter)

	var cached []model.Recipe
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	recipes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	recipes = dedupeByID(recipes)

	if err := s.cache.Set(ctx, cacheKey, recipes, listCacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache recipe list")
	}

	s.logger.Debug().
		Str("filter", filter.CacheKey()).
		Int("count", len(recipes)).
		Msg("recipes loaded")
	return recipes, nil
}

// FetchAvailable matches the full catalogue against the caller's available
// ingredients. When ranked is set, each match group is additionally ordered
// by exact ingredient overlap before being recombined.
func (s *recipeService) FetchAvailable(ctx context.Context, available []string, ranked bool) ([]model.Recipe, error) {
	recipes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}

	var matches []model.Recipe
	var stats MatchStats
	if ranked {
		availNorm := NormalizeAvailable(available)
		if len(availNorm) == 0 {
			return nil, model.ErrNoIngredients
		}
		strict, partial := partitionByAvailability(availNorm, recipes)
		stats = MatchStats{Strict: len(strict), Partial: len(partial)}
		matches = append(RankByExactOverlap(strict, available), RankByExactOverlap(partial, available)...)
	} else {
		matches, stats, err = FindMatchingRecipes(available, recipes)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info().
		Int("available", len(available)).
		Int("strict", stats.Strict).
		Int("partial", stats.Partial).
		Bool("ranked", ranked).
		Msg("ingredient matching completed")
	return matches, nil
}

func (s *recipeService) Index(ctx context.Context, req model.IndexRequest) ([]model.Recipe, model.IndexMeta, error) {
	recipes, total, err := s.repo.Index(ctx, req)
	if err != nil {
		return nil, model.IndexMeta{}, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, *model.NewIndexMeta(total, req.Page, req.PerPage), nil
}

func (s *recipeService) Show(ctx context.Context, identifier string) (*model.Recipe, error) {
	return s.repo.GetByIdentifier(ctx, identifier)
}

func (s *recipeService) Create(ctx context.Context, req model.CreateRecipeRequest, userID uuid.UUID) (*model.Recipe, error) {
	slug, err := s.generateUniqueSlug(ctx, req.RecipeName)
	if err != nil {
		return nil, err
	}

	recipe := req.ToEntity(slug)
	id, err := s.repo.Create(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	recipe.RecipeID = id

	if userID != uuid.Nil {
		if err := s.authored.RecordAuthored(ctx, userID, shared.ContentTypeRecipe, id); err != nil {
			s.logger.Error().Err(err).Int64("recipe_id", id).Msg("failed to record authorship")
		}
	}

	s.enqueueImageProcessing(ctx, id, recipe.ImagePath)
	s.invalidateListCaches(ctx)

	s.logger.Info().Int64("recipe_id", id).Str("slug", slug).Msg("recipe created")
	return recipe, nil
}

func (s *recipeService) Update(ctx context.Context, id int64, req model.UpdateRecipeRequest) (*model.Recipe, error) {
	recipe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	nameChanged := req.ApplyTo(recipe)
	if nameChanged {
		slug, err := s.generateUniqueSlug(ctx, recipe.RecipeName)
		if err != nil {
			return nil, err
		}
		recipe.RecipeSlug = slug
	}

	if err := s.repo.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	if req.ImagePath != nil {
		s.enqueueImageProcessing(ctx, id, recipe.ImagePath)
	}
	s.invalidateListCaches(ctx)

	s.logger.Info().Int64("recipe_id", id).Msg("recipe updated")
	return recipe, nil
}

func (s *recipeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListCaches(ctx)
	s.logger.Info().Int64("recipe_id", id).Msg("recipe deleted")
	return nil
}

// ExportToExcel renders the full catalogue as a spreadsheet for the admin
// surface.
func (s *recipeService) ExportToExcel(ctx context.Context) ([]byte, error) {
	recipes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Recipes"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Category", "Type", "Cooktime", "Calories", "Rating", "Author", "Slug", "Published"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, r := range recipes {
		values := []interface{}{
			r.RecipeID,
			r.RecipeName,
			r.RecipeCategory,
			r.RecipeType,
			r.RecipeCooktime,
			calories(r.RecipeCalories),
			rating(r.RecipeRating),
			r.RecipeAuthor,
			r.RecipeSlug,
			r.RecipePublishDate.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

// generateUniqueSlug appends an incrementing suffix until the slug is free.
func (s *recipeService) generateUniqueSlug(ctx context.Context, name string) (string, error) {
	base := utils.GenerateSlug(name)
	slug := base
	for counter := 1; ; counter++ {
		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// enqueueImageProcessing queues the variant pipeline for remote images.
// Local paths are served as-is.
func (s *recipeService) enqueueImageProcessing(ctx context.Context, id int64, imagePath string) {
	if s.queue == nil {
		return
	}
	if !strings.HasPrefix(imagePath, "http://") && !strings.HasPrefix(imagePath, "https://") {
		return
	}

	payload, err := json.Marshal(model.ProcessImagePayload{RecipeID: id, SourceURL: imagePath})
	if err != nil {
		s.logger.Error().Err(err).Int64("recipe_id", id).Msg("failed to marshal image task")
		return
	}

	task := asynq.NewTask(shared.TypeProcessRecipeImage, payload)
	if _, err := s.queue.EnqueueContext(ctx, task, asynq.Queue(shared.QueueImages), asynq.MaxRetry(3)); err != nil {
		s.logger.Error().Err(err).Int64("recipe_id", id).Msg("failed to enqueue image task")
	}
}

func (s *recipeService) invalidateListCaches(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "recipes:list:*"); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate recipe caches")
	}
}

// dedupeByID collapses duplicate rows keeping the first occurrence.
func dedupeByID(recipes []model.Recipe) []model.Recipe {
	seen := make(map[int64]struct{}, len(recipes))
	result := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if _, ok := seen[r.RecipeID]; ok {
			continue
		}
		seen[r.RecipeID] = struct{}{}
		result = append(result, r)
	}
	return result
}

func calories(c *int) interface{} {
	if c == nil {
		return ""
	}
	return *c
}

func rating(r *decimal.Decimal) interface{} {
	if r == nil {
		return ""
	}
	return r.String()
}
