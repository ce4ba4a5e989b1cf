package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"memepmw-backend/internal/domains/category"
)

// postgresRepository implements category.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

const categoryColumns = "id, name, slug, description, is_active, created_at, updated_at"

func scanCategory(row pgx.Row) (*category.Category, error) {
	var c category.Category
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	query := `
    INSERT INTO categories (name, slug, description, is_active, created_at, updated_at)
    VALUES ($1, $2, $3, $4, NOW(), NOW())
    RETURNING ` + categoryColumns

	created, err := scanCategory(r.pool.QueryRow(ctx, query, c.Name, c.Slug, c.Description, c.IsActive))
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return nil, category.ErrDuplicateSlug
		}
		return nil, category.NewPersistenceError("create", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	c, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`

	c, err := scanCategory(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) List(ctx context.Context, onlyActive bool) ([]*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	query := `
    UPDATE categories
    SET name = $2, slug = $3, description = $4, is_active = $5, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + categoryColumns

	updated, err := scanCategory(r.pool.QueryRow(ctx, query, c.ID, c.Name, c.Slug, c.Description, c.IsActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		if strings.Contains(err.Error(), "unique constraint") {
			return nil, category.ErrDuplicateSlug
		}
		return nil, category.NewPersistenceError("update", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return category.NewPersistenceError("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1 AND ($2::uuid IS NULL OR id <> $2))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) CountArticles(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE category_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles in category: %w", err)
	}

	return count, nil
}
