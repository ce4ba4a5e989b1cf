package reaction

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the reaction domain.
type Repository interface {
	// Increment bumps the counter for (articleID, kind), creating the
	// row on first reaction, and returns the new count.
	Increment(ctx context.Context, articleID uuid.UUID, kind string) (int, error)

	// CountsByArticle returns the counter rows for an article. Kinds
	// never reacted to have no row.
	CountsByArticle(ctx context.Context, articleID uuid.UUID) ([]*Reaction, error)

	// DeleteByArticle removes all counters for an article.
	DeleteByArticle(ctx context.Context, articleID uuid.UUID) error
}
