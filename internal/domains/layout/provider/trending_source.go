package provider

import (
	"context"

	"github.com/google/uuid"

	"memepmw-backend/internal/domains/layout"
	"memepmw-backend/internal/shared"
	"memepmw-backend/pkg/cache"
)

// trendingSource reads the id lists the worker maintains in Redis.
type trendingSource struct {
	cache cache.Cache
}

func NewTrendingSource(c cache.Cache) layout.TrendingSource {
	return &trendingSource{cache: c}
}

func (s *trendingSource) MostRead(ctx context.Context) ([]uuid.UUID, error) {
	return s.load(ctx, shared.KeyTrendingMostRead)
}

func (s *trendingSource) MostCommented(ctx context.Context) ([]uuid.UUID, error) {
	return s.load(ctx, shared.KeyTrendingMostCommented)
}

func (s *trendingSource) load(ctx context.Context, key string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	found, err := s.cache.Get(ctx, key, &ids)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return ids, nil
}
