package settings

import (
	"context"
)

// Service defines business operations for the settings domain.
type Service interface {
	// Appearance returns the public appearance key map, served from
	// cache when warm.
	Appearance(ctx context.Context) (map[string]string, error)

	// ActiveTheme returns the typed theme derived from appearance keys.
	ActiveTheme(ctx context.Context) (*Theme, error)

	// List returns all settings for the admin screen.
	List(ctx context.Context, group string) ([]*Setting, error)

	// BulkUpsert writes settings and invalidates the appearance cache.
	BulkUpsert(ctx context.Context, req *BulkUpsertReq) ([]*Setting, error)
}
