package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"tastebite-backend/internal/config"
	articlehandler "tastebite-backend/internal/domains/article/handler"
	articlerepo "tastebite-backend/internal/domains/article/repository"
	articleservice "tastebite-backend/internal/domains/article/service"
	contenthandler "tastebite-backend/internal/domains/content/handler"
	contentrepo "tastebite-backend/internal/domains/content/repository"
	contentservice "tastebite-backend/internal/domains/content/service"
	recipehandler "tastebite-backend/internal/domains/recipe/handler"
	reciperepo "tastebite-backend/internal/domains/recipe/repository"
	recipeservice "tastebite-backend/internal/domains/recipe/service"
	userhandler "tastebite-backend/internal/domains/user/handler"
	userrepo "tastebite-backend/internal/domains/user/repository"
	userservice "tastebite-backend/internal/domains/user/service"
	infracache "tastebite-backend/internal/infrastructure/cache"
	"tastebite-backend/internal/infrastructure/database"
	"tastebite-backend/internal/infrastructure/storage"
	"tastebite-backend/pkg/jwt"
	"tastebite-backend/pkg/logger"
)

// Container wires configuration, infrastructure, repositories, services and
// handlers together.
type Container struct {
	Config *Config

	DB          *database.PostgresDB
	Cache       *infracache.RedisCache
	Storage     *storage.MinIOStorage
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	RecipeRepo  reciperepo.RepositoryInterface
	ArticleRepo articlerepo.RepositoryInterface
	ContentRepo contentrepo.RepositoryInterface
	UserRepo    userrepo.RepositoryInterface

	RecipeService  recipeservice.ServiceInterface
	ArticleService articleservice.ServiceInterface
	ContentService contentservice.ServiceInterface
	UserService    userservice.ServiceInterface

	RecipeHandler  *recipehandler.RecipeHandler
	ArticleHandler *articlehandler.ArticleHandler
	ContentHandler *contenthandler.ContentHandler
	UserHandler    *userhandler.UserHandler
}

// Config re-exports the application configuration type for callers that only
// import the container.
type Config = config.Config

// New builds the full dependency graph. The returned container owns the
// database pool, the redis connection and the asynq client; call Cleanup on
// shutdown.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		db.Close()
		redisCache.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	c := &Container{
		Config:      cfg,
		DB:          db,
		Cache:       redisCache,
		Storage:     minioStorage,
		AsynqClient: asynqClient,
		JWTManager:  jwtManager,
	}

	c.buildRepositories()
	c.buildServices()
	c.buildHandlers()
	return c, nil
}

func (c *Container) buildRepositories() {
	c.RecipeRepo = reciperepo.NewPostgresRepository(c.DB.Pool)
	c.ArticleRepo = articlerepo.NewPostgresRepository(c.DB.Pool)
	c.ContentRepo = contentrepo.NewPostgresRepository(c.DB.Pool)
	c.UserRepo = userrepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) buildServices() {
	c.RecipeService = recipeservice.NewRecipeService(
		c.RecipeRepo, c.Cache, c.ContentRepo, c.AsynqClient, logger.With("recipe_service"),
	)
	c.ArticleService = articleservice.NewArticleService(
		c.ArticleRepo, c.Cache, c.ContentRepo, logger.With("article_service"),
	)
	c.ContentService = contentservice.NewContentService(
		c.ContentRepo, c.RecipeRepo, c.ArticleRepo, logger.With("content_service"),
	)
	c.UserService = userservice.NewUserService(
		c.UserRepo, c.JWTManager, logger.With("user_service"),
	)
}

func (c *Container) buildHandlers() {
	c.RecipeHandler = recipehandler.NewRecipeHandler(c.RecipeService)
	c.ArticleHandler = articlehandler.NewArticleHandler(c.ArticleService)
	c.ContentHandler = contenthandler.NewContentHandler(c.ContentService)
	c.UserHandler = userhandler.NewUserHandler(c.UserService)
}

// Cleanup releases every owned connection. Safe to call once on shutdown.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		c.AsynqClient.Close()
	}
	if c.Cache != nil {
		c.Cache.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
