package settings

import (
	"context"
)

// Repository defines data access for the settings domain.
type Repository interface {
	// List returns settings, optionally filtered by group (empty = all).
	List(ctx context.Context, group string) ([]*Setting, error)

	// MapByGroup returns the key→value map for one group.
	MapByGroup(ctx context.Context, group string) (map[string]string, error)

	// Upsert writes the given settings in one transaction.
	Upsert(ctx context.Context, settings []*Setting) error
}
