package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"memepmw-backend/internal/domains/page"
)

// postgresRepository implements page.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) page.Repository {
	return &postgresRepository{pool: pool}
}

const pageColumns = "id, title, slug, content, status, created_by, updated_by, created_at, updated_at"

func scanPage(row pgx.Row) (*page.Page, error) {
	var p page.Page
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Status,
		&p.CreatedBy,
		&p.UpdatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *page.Page) (*page.Page, error) {
	query := `
    INSERT INTO pages (title, slug, content, status, created_by, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
    RETURNING ` + pageColumns

	created, err := scanPage(r.pool.QueryRow(ctx, query, p.Title, p.Slug, p.Content, p.Status, p.CreatedBy))
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return nil, page.ErrDuplicateSlug
		}
		return nil, page.NewPersistenceError("create", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*page.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE id = $1`

	p, err := scanPage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, page.ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to get page by id: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*page.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE slug = $1`

	p, err := scanPage(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, page.ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to get page by slug: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*page.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages ORDER BY title ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var pages []*page.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, p)
	}

	return pages, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, p *page.Page) (*page.Page, error) {
	query := `
    UPDATE pages
    SET title = $2, slug = $3, content = $4, status = $5, updated_by = $6, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + pageColumns

	updated, err := scanPage(r.pool.QueryRow(ctx, query, p.ID, p.Title, p.Slug, p.Content, p.Status, p.UpdatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, page.ErrPageNotFound
		}
		if strings.Contains(err.Error(), "unique constraint") {
			return nil, page.ErrDuplicateSlug
		}
		return nil, page.NewPersistenceError("update", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return page.NewPersistenceError("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return page.ErrPageNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
    SELECT 1 FROM pages WHERE slug = $1 AND ($2::uuid IS NULL OR id <> $2)
  )`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check page slug: %w", err)
	}

	return exists, nil
}
