package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"memepmw-backend/internal/domains/settings"
	"memepmw-backend/pkg/database"
)

// postgresRepository implements settings.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) settings.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, group string) ([]*settings.Setting, error) {
	query := `SELECT key, value, group_name, updated_at FROM settings`
	args := []interface{}{}
	if group != "" {
		query += ` WHERE group_name = $1`
		args = append(args, group)
	}
	query += ` ORDER BY group_name, key`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var result []*settings.Setting
	for rows.Next() {
		var s settings.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Group, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		result = append(result, &s)
	}

	return result, rows.Err()
}

func (r *postgresRepository) MapByGroup(ctx context.Context, group string) (map[string]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT key, value FROM settings WHERE group_name = $1`, group)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings map: %w", err)
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		m[key] = value
	}

	return m, rows.Err()
}

func (r *postgresRepository) Upsert(ctx context.Context, toWrite []*settings.Setting) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, s := range toWrite {
			_, err := tx.Exec(ctx, `
        INSERT INTO settings (key, value, group_name, updated_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (key)
        DO UPDATE SET value = EXCLUDED.value, group_name = EXCLUDED.group_name, updated_at = NOW()`,
				s.Key, s.Value, s.Group)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return settings.NewPersistenceError("upsert", err)
	}

	return nil
}
