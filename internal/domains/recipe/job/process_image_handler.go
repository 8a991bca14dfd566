package job

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"tastebite-backend/internal/domains/recipe/model"
	"tastebite-backend/internal/domains/recipe/repository"
	"tastebite-backend/internal/infrastructure/storage"
)

const downloadTimeout = 30 * time.Second

// ProcessImageHandler downloads a recipe's source image, produces the sized
// variants and updates the stored image path to the uploaded original.
type ProcessImageHandler struct {
	repo      repository.RepositoryInterface
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
	logger    zerolog.Logger
}

func NewProcessImageHandler(
	repo repository.RepositoryInterface,
	store *storage.MinIOStorage,
	processor *storage.ImageProcessor,
	logger zerolog.Logger,
) *ProcessImageHandler {
	return &ProcessImageHandler{
		repo:      repo,
		storage:   store,
		processor: processor,
		logger:    logger,
	}
}

func (h *ProcessImageHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.ProcessImagePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	data, err := h.download(ctx, payload.SourceURL)
	if err != nil {
		return fmt.Errorf("failed to download image for recipe %d: %w", payload.RecipeID, err)
	}

	if err := h.processor.ValidateImage(data); err != nil {
		// Not retryable, the source bytes will not change.
		h.logger.Warn().
			Err(err).
			Int64("recipe_id", payload.RecipeID).
			Msg("rejected source image")
		return nil
	}

	variants, err := h.processor.ProcessImage(data)
	if err != nil {
		return fmt.Errorf("failed to process image for recipe %d: %w", payload.RecipeID, err)
	}

	var primaryURL string
	for name, bytes := range variants {
		key := fmt.Sprintf("recipes/%d/%s.jpg", payload.RecipeID, name)
		url, err := h.storage.Upload(ctx, key, bytes, "image/jpeg")
		if err != nil {
			return fmt.Errorf("failed to upload %s variant: %w", name, err)
		}
		if name == "large" {
			primaryURL = url
		}
	}

	if primaryURL != "" {
		if err := h.repo.UpdateImagePath(ctx, payload.RecipeID, primaryURL); err != nil {
			return fmt.Errorf("failed to update image path: %w", err)
		}
	}

	h.logger.Info().
		Int64("recipe_id", payload.RecipeID).
		Int("variants", len(variants)).
		Msg("recipe image processed")
	return nil
}

func (h *ProcessImageHandler) download(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, h.processor.MaxSize+1))
}
