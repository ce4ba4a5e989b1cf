package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"memepmw-backend/internal/domains/reaction"
)

// postgresRepository implements reaction.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) reaction.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Increment(ctx context.Context, articleID uuid.UUID, kind string) (int, error) {
	query := `
    INSERT INTO reactions (article_id, kind, count, updated_at)
    VALUES ($1, $2, 1, NOW())
    ON CONFLICT (article_id, kind)
    DO UPDATE SET count = reactions.count + 1, updated_at = NOW()
    RETURNING count`

	var count int
	if err := r.pool.QueryRow(ctx, query, articleID, kind).Scan(&count); err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return 0, reaction.ErrArticleNotFound
		}
		return 0, reaction.NewPersistenceError("increment", err)
	}

	return count, nil
}

func (r *postgresRepository) CountsByArticle(ctx context.Context, articleID uuid.UUID) ([]*reaction.Reaction, error) {
	query := `
    SELECT id, article_id, kind, count, updated_at
    FROM reactions
    WHERE article_id = $1`

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	defer rows.Close()

	var reactions []*reaction.Reaction
	for rows.Next() {
		var row reaction.Reaction
		if err := rows.Scan(&row.ID, &row.ArticleID, &row.Kind, &row.Count, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reaction: %w", err)
		}
		reactions = append(reactions, &row)
	}

	return reactions, rows.Err()
}

func (r *postgresRepository) DeleteByArticle(ctx context.Context, articleID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM reactions WHERE article_id = $1`, articleID); err != nil {
		return reaction.NewPersistenceError("delete", err)
	}

	return nil
}
