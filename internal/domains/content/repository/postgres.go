package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tastebite-backend/internal/shared"
)

// RepositoryInterface is the user/content relation data-access contract.
// Relations back both favourites and authorship through the relation_kind
// column.
type RepositoryInterface interface {
	// ToggleFavourite removes the favourite if present, otherwise records
	// it. Returns whether the content is favourited after the call.
	ToggleFavourite(ctx context.Context, userID uuid.UUID, contentType string, contentID int64) (bool, error)

	IsFavourited(ctx context.Context, userID uuid.UUID, contentType string, contentID int64) (bool, error)

	// FavouriteIDs returns the user's favourited content IDs in insertion
	// order.
	FavouriteIDs(ctx context.Context, userID uuid.UUID, contentType string) ([]int64, error)

	// RecordAuthored links newly created content to its author. Duplicate
	// records are ignored.
	RecordAuthored(ctx context.Context, userID uuid.UUID, contentType string, contentID int64) error

	// Count returns the number of relations of the given kind.
	Count(ctx context.Context, userID uuid.UUID, contentType, kind string) (int, error)

	// IDsPage returns one page of related content IDs in insertion order.
	IDsPage(ctx context.Context, userID uuid.UUID, contentType, kind string, limit, offset int) ([]int64, error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ToggleFavourite(ctx context.Context, userID uuid.UUID, contentType string, contentID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM user_content_relations
		WHERE user_id = $1 AND content_id = $2 AND content_type = $3 AND relation_kind = $4`,
		userID, contentID, contentType, shared.RelationFavourite,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove favourite: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO user_content_relations (user_id, content_id, content_type, relation_kind)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, content_id, content_type, relation_kind) DO NOTHING`,
		userID, contentID, contentType, shared.RelationFavourite,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add favourite: %w", err)
	}
	return true, nil
}

func (r *postgresRepository) IsFavourited(ctx context.Context, userID uuid.UUID, contentType string, contentID int64) (bool, error) {
	var favourited bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM user_content_relations
			WHERE user_id = $1 AND content_id = $2 AND content_type = $3 AND relation_kind = $4
		)`,
		userID, contentID, contentType, shared.RelationFavourite,
	).Scan(&favourited)
	if err != nil {
		return false, fmt.Errorf("failed to check favourite: %w", err)
	}
	return favourited, nil
}

func (r *postgresRepository) FavouriteIDs(ctx context.Context, userID uuid.UUID, contentType string) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT content_id FROM user_content_relations
		WHERE user_id = $1 AND content_type = $2 AND relation_kind = $3
		ORDER BY created_at ASC`,
		userID, contentType, shared.RelationFavourite,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query favourites: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favourite: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresRepository) RecordAuthored(ctx context.Context, userID uuid.UUID, contentType string, contentID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_content_relations (user_id, content_id, content_type, relation_kind)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, content_id, content_type, relation_kind) DO NOTHING`,
		userID, contentID, contentType, shared.RelationAuthored,
	)
	if err != nil {
		return fmt.Errorf("failed to record authorship: %w", err)
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context, userID uuid.UUID, contentType, kind string) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM user_content_relations
		WHERE user_id = $1 AND content_type = $2 AND relation_kind = $3`,
		userID, contentType, kind,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count relations: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) IDsPage(ctx context.Context, userID uuid.UUID, contentType, kind string, limit, offset int) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT content_id FROM user_content_relations
		WHERE user_id = $1 AND content_type = $2 AND relation_kind = $3
		ORDER BY created_at ASC
		LIMIT $4 OFFSET $5`,
		userID, contentType, kind, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query relations: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan relation: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
