package article

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines data access for the article domain.
type Repository interface {
	Create(ctx context.Context, a *Article) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)

	// ListPublished returns visible articles newest-first with joined
	// category/author names and comment/reaction aggregates.
	ListPublished(ctx context.Context, q *ListQuery) ([]*Article, int, error)

	// ListAll returns every article for the admin screens.
	ListAll(ctx context.Context, offset, limit int) ([]*Article, int, error)

	// ListByIDs returns visible articles preserving the order of ids.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Article, error)

	Update(ctx context.Context, a *Article) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)

	// IncrementViewCount bumps the read counter; failures are non-fatal to reads.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// TopByViews / TopByComments feed the trending lists.
	TopByViews(ctx context.Context, limit int) ([]uuid.UUID, error)
	TopByComments(ctx context.Context, limit int) ([]uuid.UUID, error)

	// PublishDue flips scheduled articles whose publish time has passed.
	PublishDue(ctx context.Context, now time.Time) (int, error)
}
