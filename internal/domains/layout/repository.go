package layout

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the layout store. Exclusive
// activation (deactivate all, activate one) runs inside a single
// transaction in every path that sets the active flag.
type Repository interface {
	// Create persists a layout. When l.IsActive is true all other
	// layouts are deactivated in the same transaction.
	Create(ctx context.Context, l *PageLayout) (*PageLayout, error)

	GetByID(ctx context.Context, id uuid.UUID) (*PageLayout, error)

	// GetActive returns the active layout or ErrNoActiveLayout.
	GetActive(ctx context.Context) (*PageLayout, error)

	List(ctx context.Context) ([]*PageLayout, error)

	// Update replaces name and the whole block sequence.
	Update(ctx context.Context, l *PageLayout) (*PageLayout, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// Activate makes exactly this layout active, atomically.
	Activate(ctx context.Context, id uuid.UUID) (*PageLayout, error)
}
