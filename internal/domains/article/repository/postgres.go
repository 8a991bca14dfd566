package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"tastebite-backend/internal/domains/article/model"
)

const articleColumns = `article_id, article_title, article_summary, article_content,
	article_author, article_category, tags, read_time, views, rating,
	image_path, article_slug, article_publish_date`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	var a model.Article
	err := row.Scan(
		&a.ArticleID, &a.ArticleTitle, &a.ArticleSummary, &a.ArticleContent,
		&a.ArticleAuthor, &a.ArticleCategory, pq.Array(&a.Tags), &a.ReadTime,
		&a.Views, &a.Rating, &a.ImagePath, &a.ArticleSlug, &a.ArticlePublishDate,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]model.Article, error) {
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

func (r *postgresRepository) List(ctx context.Context, search, category string) ([]model.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles`, articleColumns)
	args := []interface{}{}
	switch {
	case search != "":
		query += ` WHERE article_title ILIKE '%' || $1 || '%'
			OR article_author ILIKE '%' || $1 || '%'`
		args = append(args, search)
	case category != "":
		query += ` WHERE article_category ILIKE $1`
		args = append(args, category)
	}
	query += ` ORDER BY article_publish_date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	return collectArticles(rows)
}

func (r *postgresRepository) Index(ctx context.Context, limit, offset int) ([]model.Article, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM articles ORDER BY article_publish_date DESC LIMIT $1 OFFSET $2`,
		articleColumns,
	)
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}

	articles, err := collectArticles(rows)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *postgresRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.Article, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		article, err := r.GetByID(ctx, id)
		if err == nil || !errors.Is(err, model.ErrArticleNotFound) {
			return article, err
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM articles WHERE article_slug = $1`, articleColumns)
	article, err := scanArticle(r.pool.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE article_id = $1`, articleColumns)
	article, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

func (r *postgresRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Article, error) {
	if len(ids) == 0 {
		return []model.Article{}, nil
	}

	query := fmt.Sprintf(
		`SELECT %s FROM articles WHERE article_id = ANY($1) ORDER BY article_publish_date DESC`,
		articleColumns,
	)
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	return collectArticles(rows)
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check article: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM articles WHERE article_slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, article *model.Article) (int64, error) {
	query := `
		INSERT INTO articles (
			article_title, article_summary, article_content, article_author,
			article_category, tags, read_time, image_path, article_slug,
			article_publish_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING article_id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		article.ArticleTitle, article.ArticleSummary, article.ArticleContent,
		article.ArticleAuthor, article.ArticleCategory, pq.Array(article.Tags),
		article.ReadTime, article.ImagePath, article.ArticleSlug,
		article.ArticlePublishDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create article: %w", err)
	}
	return id, nil
}

func (r *postgresRepository) Update(ctx context.Context, article *model.Article) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET article_title = $1, article_summary = $2,
			article_content = $3, article_author = $4, article_category = $5,
			tags = $6, read_time = $7, image_path = $8, article_slug = $9
		WHERE article_id = $10`,
		article.ArticleTitle, article.ArticleSummary, article.ArticleContent,
		article.ArticleAuthor, article.ArticleCategory, pq.Array(article.Tags),
		article.ReadTime, article.ImagePath, article.ArticleSlug,
		article.ArticleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE article_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}
