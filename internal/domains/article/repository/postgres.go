package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"memepmw-backend/internal/domains/article"
)

// postgresRepository implements article.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) article.Repository {
	return &postgresRepository{pool: pool}
}

// articleSelect joins category/author names and comment/reaction aggregates.
const articleSelect = `
  SELECT a.id, a.title, a.slug, a.summary, a.content, a.category_id, a.image_url,
         a.tags, a.status, a.published_at, a.author_id, a.view_count,
         a.created_at, a.updated_at,
         c.name AS category_name,
         COALESCE(u.full_name, '') AS author_name,
         COALESCE(cm.cnt, 0) AS comment_count,
         COALESCE(rx.cnt, 0) AS reaction_count
  FROM articles a
  LEFT JOIN categories c ON c.id = a.category_id
  LEFT JOIN users u ON u.id = a.author_id
  LEFT JOIN (
    SELECT article_id, COUNT(*) AS cnt FROM comments WHERE status = 'approved' GROUP BY article_id
  ) cm ON cm.article_id = a.id
  LEFT JOIN (
    SELECT article_id, SUM(count) AS cnt FROM reactions GROUP BY article_id
  ) rx ON rx.article_id = a.id
`

const visibleWhere = `a.status = 'published' AND a.published_at IS NOT NULL AND a.published_at <= NOW()`

func scanArticle(row pgx.Row) (*article.Article, error) {
	var a article.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.Summary,
		&a.Content,
		&a.CategoryID,
		&a.ImageURL,
		pq.Array(&a.Tags),
		&a.Status,
		&a.PublishedAt,
		&a.AuthorID,
		&a.ViewCount,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.CategoryName,
		&a.AuthorName,
		&a.CommentCount,
		&a.ReactionCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *article.Article) (*article.Article, error) {
	query := `
    INSERT INTO articles (title, slug, summary, content, category_id, image_url,
                          tags, status, published_at, author_id, view_count,
                          created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, NOW(), NOW())
    RETURNING id
  `

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		a.Title, a.Slug, a.Summary, a.Content, a.CategoryID, a.ImageURL,
		pq.Array(a.Tags), a.Status, a.PublishedAt, a.AuthorID,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return nil, article.ErrDuplicateSlug
		}
		if strings.Contains(err.Error(), "foreign key") {
			return nil, article.ErrCategoryNotFound
		}
		return nil, article.NewPersistenceError("create", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	query := articleSelect + ` WHERE a.id = $1`

	a, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*article.Article, error) {
	query := articleSelect + ` WHERE a.slug = $1`

	a, err := scanArticle(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) ListPublished(ctx context.Context, q *article.ListQuery) ([]*article.Article, int, error) {
	where := visibleWhere
	args := []interface{}{}
	argn := 1

	if q.Category != "" {
		where += fmt.Sprintf(" AND c.slug = $%d", argn)
		args = append(args, q.Category)
		argn++
	}
	if q.Search != "" {
		where += fmt.Sprintf(" AND a.title ILIKE $%d", argn)
		args = append(args, "%"+q.Search+"%")
		argn++
	}

	countQuery := `
    SELECT COUNT(*)
    FROM articles a
    LEFT JOIN categories c ON c.id = a.category_id
    WHERE ` + where

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	listQuery := articleSelect + ` WHERE ` + where +
		fmt.Sprintf(" ORDER BY a.published_at DESC LIMIT $%d OFFSET $%d", argn, argn+1)
	args = append(args, q.Limit, offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles, err := collectArticles(rows)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *postgresRepository) ListAll(ctx context.Context, offset, limit int) ([]*article.Article, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query := articleSelect + ` ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles, err := collectArticles(rows)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *postgresRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*article.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	// array_position keeps the caller's ranking (trending order).
	query := articleSelect + ` WHERE a.id = ANY($1) AND ` + visibleWhere +
		` ORDER BY array_position($1, a.id)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles by ids: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *postgresRepository) Update(ctx context.Context, a *article.Article) (*article.Article, error) {
	query := `
    UPDATE articles
    SET title = $2, slug = $3, summary = $4, content = $5, category_id = $6,
        image_url = $7, tags = $8, status = $9, published_at = $10, updated_at = NOW()
    WHERE id = $1
  `

	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.Title, a.Slug, a.Summary, a.Content, a.CategoryID,
		a.ImageURL, pq.Array(a.Tags), a.Status, a.PublishedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return nil, article.ErrDuplicateSlug
		}
		if strings.Contains(err.Error(), "foreign key") {
			return nil, article.ErrCategoryNotFound
		}
		return nil, article.NewPersistenceError("update", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, article.ErrArticleNotFound
	}

	return r.GetByID(ctx, a.ID)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return article.NewPersistenceError("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1 AND ($2::uuid IS NULL OR id <> $2))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check article slug: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE articles SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}

func (r *postgresRepository) TopByViews(ctx context.Context, limit int) ([]uuid.UUID, error) {
	query := `
    SELECT a.id FROM articles a
    WHERE ` + visibleWhere + `
    ORDER BY a.view_count DESC, a.published_at DESC
    LIMIT $1
  `
	return r.collectIDs(ctx, query, limit)
}

func (r *postgresRepository) TopByComments(ctx context.Context, limit int) ([]uuid.UUID, error) {
	query := `
    SELECT a.id FROM articles a
    LEFT JOIN (
      SELECT article_id, COUNT(*) AS cnt FROM comments WHERE status = 'approved' GROUP BY article_id
    ) cm ON cm.article_id = a.id
    WHERE ` + visibleWhere + `
    ORDER BY COALESCE(cm.cnt, 0) DESC, a.published_at DESC
    LIMIT $1
  `
	return r.collectIDs(ctx, query, limit)
}

func (r *postgresRepository) PublishDue(ctx context.Context, now time.Time) (int, error) {
	tag, err := r.pool.Exec(ctx, `
    UPDATE articles SET status = 'published', updated_at = NOW()
    WHERE status = 'scheduled' AND published_at IS NOT NULL AND published_at <= $1
  `, now)
	if err != nil {
		return 0, fmt.Errorf("failed to publish due articles: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *postgresRepository) collectIDs(ctx context.Context, query string, limit int) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query article ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan article id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func collectArticles(rows pgx.Rows) ([]*article.Article, error) {
	var articles []*article.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}
