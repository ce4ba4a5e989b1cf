package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the category domain.
type Repository interface {
	Create(ctx context.Context, c *Category) (*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context, onlyActive bool) ([]*Category, error)
	Update(ctx context.Context, c *Category) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsBySlug checks slug uniqueness; excludeID skips one row (updates).
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)

	// CountArticles reports how many articles reference the category.
	CountArticles(ctx context.Context, id uuid.UUID) (int, error)
}
