package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tastebite-backend/internal/domains/article/model"
	"tastebite-backend/internal/domains/article/repository"
	"tastebite-backend/internal/shared"
	"tastebite-backend/internal/shared/utils"
	"tastebite-backend/pkg/cache"
)

const listCacheTTL = 10 * time.Minute

// ServiceInterface defines article business logic operations.
type ServiceInterface interface {
	Load(ctx context.Context, search, category string) ([]model.ListItem, error)
	Index(ctx context.Context, page, perPage int) ([]model.Article, int, error)
	Show(ctx context.Context, identifier string) (*model.Article, error)
	Create(ctx context.Context, req model.CreateArticleRequest, userID uuid.UUID) (*model.Article, error)
	Update(ctx context.Context, id int64, req model.UpdateArticleRequest) (*model.Article, error)
	Delete(ctx context.Context, id int64) error
}

// AuthoredRecorder mirrors the recipe service declaration; the content
// repository satisfies both.
type AuthoredRecorder interface {
	RecordAuthored(ctx context.Context, userID uuid.UUID, contentType string, contentID int64) error
}

type articleService struct {
	repo     repository.RepositoryInterface
	cache    cache.Cache
	authored AuthoredRecorder
	logger   zerolog.Logger
}

func NewArticleService(
	repo repository.RepositoryInterface,
	cache cache.Cache,
	authored AuthoredRecorder,
	logger zerolog.Logger,
) ServiceInterface {
	return &articleService{
		repo:     repo,
		cache:    cache,
		authored: authored,
		logger:   logger,
	}
}

// Load returns the article cards, cache-aside keyed by the active filter.
// Search wins over category when both are present.
func (s *articleService) Load(ctx context.Context, search, category string) ([]model.ListItem, error) {
	search = strings.TrimSpace(search)
	category = strings.TrimSpace(category)

	cacheKey := "articles:list:all"
	switch {
	case search != "":
		cacheKey = fmt.Sprintf("articles:list:search:%s", strings.ToLower(search))
	case category != "":
		cacheKey = fmt.Sprintf("articles:list:category:%s", strings.ToLower(category))
	}

	var cached []model.ListItem
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	articles, err := s.repo.List(ctx, search, category)
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}

	items := make([]model.ListItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, a.ToListItem())
	}

	if err := s.cache.Set(ctx, cacheKey, items, listCacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache article list")
	}

	s.logger.Debug().Str("category", category).Int("count", len(items)).Msg("articles loaded")
	return items, nil
}

func (s *articleService) Index(ctx context.Context, page, perPage int) ([]model.Article, int, error) {
	return s.repo.Index(ctx, perPage, (page-1)*perPage)
}

func (s *articleService) Show(ctx context.Context, identifier string) (*model.Article, error) {
	return s.repo.GetByIdentifier(ctx, identifier)
}

func (s *articleService) Create(ctx context.Context, req model.CreateArticleRequest, userID uuid.UUID) (*model.Article, error) {
	slug, err := s.generateUniqueSlug(ctx, req.ArticleTitle)
	if err != nil {
		return nil, err
	}

	article := req.ToEntity(slug)
	id, err := s.repo.Create(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	article.ArticleID = id

	if userID != uuid.Nil {
		if err := s.authored.RecordAuthored(ctx, userID, shared.ContentTypeArticle, id); err != nil {
			s.logger.Error().Err(err).Int64("article_id", id).Msg("failed to record authorship")
		}
	}

	s.invalidateListCaches(ctx)
	s.logger.Info().Int64("article_id", id).Str("slug", slug).Msg("article created")
	return article, nil
}

func (s *articleService) Update(ctx context.Context, id int64, req model.UpdateArticleRequest) (*model.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	titleChanged := req.ApplyTo(article)
	if titleChanged {
		slug, err := s.generateUniqueSlug(ctx, article.ArticleTitle)
		if err != nil {
			return nil, err
		}
		article.ArticleSlug = slug
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	s.invalidateListCaches(ctx)
	s.logger.Info().Int64("article_id", id).Msg("article updated")
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListCaches(ctx)
	s.logger.Info().Int64("article_id", id).Msg("article deleted")
	return nil
}

// generateUniqueSlug appends an incrementing suffix until the slug is free.
func (s *articleService) generateUniqueSlug(ctx context.Context, title string) (string, error) {
	base := utils.GenerateSlug(title)
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

func (s *articleService) invalidateListCaches(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "articles:list:*"); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate article caches")
	}
}
