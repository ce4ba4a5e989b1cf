package page

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the page domain.
type Repository interface {
	Create(ctx context.Context, p *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	Update(ctx context.Context, p *Page) (*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsBySlug reports whether a page other than excludeID owns slug.
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}
