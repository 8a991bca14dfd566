package main

import (
	"context"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"tastebite-backend/internal/domains/recipe/job"
	recipemodel "tastebite-backend/internal/domains/recipe/model"
	"tastebite-backend/internal/infrastructure/storage"
	"tastebite-backend/internal/shared"
	"tastebite-backend/pkg/container"
	"tastebite-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	if err := run(); err != nil {
		logger.Error("worker exited with error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := container.New(ctx)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	redisOpt := asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			shared.QueueImages:  6,
			shared.QueueDefault: 4,
		},
	})

	imageHandler := job.NewProcessImageHandler(
		c.RecipeRepo,
		c.Storage,
		storage.NewImageProcessor(),
		logger.With("image_job"),
	)

	mux := asynq.NewServeMux()
	mux.Handle(shared.TypeProcessRecipeImage, imageHandler)
	mux.HandleFunc(shared.TypeWarmListCaches, warmListCaches(c))

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register(
		"@every 30m",
		asynq.NewTask(shared.TypeWarmListCaches, nil),
		asynq.Queue(shared.QueueDefault),
	); err != nil {
		return err
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("scheduler stopped", err)
		}
	}()

	logger.Info("worker started", map[string]interface{}{
		"queues": []string{shared.QueueImages, shared.QueueDefault},
	})
	return srv.Run(mux)
}

// warmListCaches refreshes the unfiltered listing caches so the first
// request after an invalidation does not pay the query cost.
func warmListCaches(c *container.Container) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		if _, err := c.RecipeService.Load(ctx, recipemodel.ResolveRecipeFilter("", "", "")); err != nil {
			return err
		}
		if _, err := c.ArticleService.Load(ctx, "", ""); err != nil {
			return err
		}
		logger.Debug("listing caches warmed")
		return nil
	}
}
