package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"memepmw-backend/internal/domains/layout"
	"memepmw-backend/pkg/database"
)

// postgresRepository implements layout.Repository on pgxpool. Blocks
// are stored as a jsonb column.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) layout.Repository {
	return &postgresRepository{pool: pool}
}

const layoutColumns = "id, name, blocks, is_active, created_by, updated_by, created_at, updated_at"

func scanLayout(row pgx.Row) (*layout.PageLayout, error) {
	var (
		l      layout.PageLayout
		blocks []byte
	)
	err := row.Scan(
		&l.ID,
		&l.Name,
		&blocks,
		&l.IsActive,
		&l.CreatedBy,
		&l.UpdatedBy,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(blocks, &l.Blocks); err != nil {
		return nil, fmt.Errorf("failed to decode layout blocks: %w", err)
	}
	if l.Blocks == nil {
		l.Blocks = []layout.Block{}
	}

	return &l, nil
}

func encodeBlocks(blocks []layout.Block) ([]byte, error) {
	if blocks == nil {
		blocks = []layout.Block{}
	}
	return json.Marshal(blocks)
}

func (r *postgresRepository) Create(ctx context.Context, l *layout.PageLayout) (*layout.PageLayout, error) {
	blocks, err := encodeBlocks(l.Blocks)
	if err != nil {
		return nil, layout.NewPersistenceError("create", err)
	}

	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*layout.PageLayout, error) {
		if l.IsActive {
			if _, err := tx.Exec(ctx, `UPDATE page_layouts SET is_active = FALSE WHERE is_active`); err != nil {
				return nil, err
			}
		}

		query := `
      INSERT INTO page_layouts (name, blocks, is_active, created_by, created_at, updated_at)
      VALUES ($1, $2, $3, $4, NOW(), NOW())
      RETURNING ` + layoutColumns

		return scanLayout(tx.QueryRow(ctx, query, l.Name, blocks, l.IsActive, l.CreatedBy))
	})
	if err != nil {
		return nil, layout.NewPersistenceError("create", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*layout.PageLayout, error) {
	query := `SELECT ` + layoutColumns + ` FROM page_layouts WHERE id = $1`

	l, err := scanLayout(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, layout.ErrLayoutNotFound
		}
		return nil, fmt.Errorf("failed to get layout by id: %w", err)
	}

	return l, nil
}

func (r *postgresRepository) GetActive(ctx context.Context) (*layout.PageLayout, error) {
	query := `SELECT ` + layoutColumns + ` FROM page_layouts WHERE is_active LIMIT 1`

	l, err := scanLayout(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, layout.ErrNoActiveLayout
		}
		return nil, fmt.Errorf("failed to get active layout: %w", err)
	}

	return l, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*layout.PageLayout, error) {
	query := `SELECT ` + layoutColumns + ` FROM page_layouts ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	defer rows.Close()

	var layouts []*layout.PageLayout
	for rows.Next() {
		l, err := scanLayout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan layout: %w", err)
		}
		layouts = append(layouts, l)
	}

	return layouts, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, l *layout.PageLayout) (*layout.PageLayout, error) {
	blocks, err := encodeBlocks(l.Blocks)
	if err != nil {
		return nil, layout.NewPersistenceError("update", err)
	}

	query := `
    UPDATE page_layouts
    SET name = $2, blocks = $3, updated_by = $4, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + layoutColumns

	updated, err := scanLayout(r.pool.QueryRow(ctx, query, l.ID, l.Name, blocks, l.UpdatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, layout.ErrLayoutNotFound
		}
		return nil, layout.NewPersistenceError("update", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM page_layouts WHERE id = $1`, id)
	if err != nil {
		return layout.NewPersistenceError("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return layout.ErrLayoutNotFound
	}

	return nil
}

func (r *postgresRepository) Activate(ctx context.Context, id uuid.UUID) (*layout.PageLayout, error) {
	activated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*layout.PageLayout, error) {
		if _, err := tx.Exec(ctx, `UPDATE page_layouts SET is_active = FALSE WHERE is_active AND id <> $1`, id); err != nil {
			return nil, err
		}

		query := `
      UPDATE page_layouts SET is_active = TRUE, updated_at = NOW()
      WHERE id = $1
      RETURNING ` + layoutColumns

		l, err := scanLayout(tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, layout.ErrLayoutNotFound
			}
			return nil, err
		}

		return l, nil
	})
	if err != nil {
		if errors.Is(err, layout.ErrLayoutNotFound) {
			return nil, err
		}
		return nil, layout.NewPersistenceError("activate", err)
	}

	return activated, nil
}
