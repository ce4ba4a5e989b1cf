package comment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines data access for the comment domain.
type Repository interface {
	Create(ctx context.Context, c *Comment) (*Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// ListByArticle returns approved comments for an article, oldest first.
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*Comment, error)

	// ListAll returns comments for moderation; status empty = all statuses.
	ListAll(ctx context.Context, status string, offset, limit int) ([]*Comment, int, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// PurgeRejectedBefore deletes rejected comments older than cutoff.
	PurgeRejectedBefore(ctx context.Context, cutoff time.Time) (int, error)
}
