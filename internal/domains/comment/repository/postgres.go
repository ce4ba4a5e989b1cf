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

	"memepmw-backend/internal/domains/comment"
)

// postgresRepository implements comment.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

const commentColumns = "id, article_id, author_name, content, status, created_at, updated_at"

func scanComment(row pgx.Row) (*comment.Comment, error) {
	var c comment.Comment
	err := row.Scan(
		&c.ID,
		&c.ArticleID,
		&c.AuthorName,
		&c.Content,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	query := `
    INSERT INTO comments (article_id, author_name, content, status, created_at, updated_at)
    VALUES ($1, $2, $3, $4, NOW(), NOW())
    RETURNING ` + commentColumns

	created, err := scanComment(r.pool.QueryRow(ctx, query, c.ArticleID, c.AuthorName, c.Content, c.Status))
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return nil, comment.ErrArticleNotFound
		}
		return nil, comment.NewPersistenceError("create", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	c, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*comment.Comment, error) {
	query := `SELECT ` + commentColumns + `
    FROM comments
    WHERE article_id = $1 AND status = 'approved'
    ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *postgresRepository) ListAll(ctx context.Context, status string, offset, limit int) ([]*comment.Comment, int, error) {
	where := ""
	countArgs := []interface{}{}
	if status != "" {
		where = ` WHERE status = $1`
		countArgs = append(countArgs, status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments`+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `SELECT ` + commentColumns + ` FROM comments` + where + ` ORDER BY created_at DESC`
	args := countArgs
	if status != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments, err := collectComments(rows)
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*comment.Comment, error) {
	query := `
    UPDATE comments SET status = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + commentColumns

	c, err := scanComment(r.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, comment.NewPersistenceError("moderate", err)
	}

	return c, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return comment.NewPersistenceError("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

func (r *postgresRepository) PurgeRejectedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM comments WHERE status = 'rejected' AND updated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge rejected comments: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func collectComments(rows pgx.Rows) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
