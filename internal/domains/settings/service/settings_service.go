package service

import (
	"context"
	"time"

	"memepmw-backend/internal/domains/settings"
	"memepmw-backend/internal/shared"
	"memepmw-backend/pkg/cache"
	"memepmw-backend/pkg/logger"
)

const appearanceCacheTTL = 10 * time.Minute

type settingsService struct {
	repo  settings.Repository
	cache cache.Cache
}

func NewSettingsService(repo settings.Repository, c cache.Cache) settings.Service {
	return &settingsService{repo: repo, cache: c}
}

func (s *settingsService) Appearance(ctx context.Context) (map[string]string, error) {
	var cached map[string]string
	if found, err := s.cache.Get(ctx, shared.KeyAppearanceSettings, &cached); err == nil && found {
		return cached, nil
	}

	m, err := s.repo.MapByGroup(ctx, settings.GroupAppearance)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, shared.KeyAppearanceSettings, m, appearanceCacheTTL); err != nil {
		logger.Warn("Failed to cache appearance settings", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return m, nil
}

func (s *settingsService) ActiveTheme(ctx context.Context) (*settings.Theme, error) {
	m, err := s.Appearance(ctx)
	if err != nil {
		return nil, err
	}

	return settings.ThemeFromMap(m), nil
}

func (s *settingsService) List(ctx context.Context, group string) ([]*settings.Setting, error) {
	if group != "" && !settings.ValidGroup(group) {
		return nil, settings.ErrInvalidGroup
	}

	return s.repo.List(ctx, group)
}

func (s *settingsService) BulkUpsert(ctx context.Context, req *settings.BulkUpsertReq) ([]*settings.Setting, error) {
	toWrite := make([]*settings.Setting, 0, len(req.Settings))
	for _, item := range req.Settings {
		if item.Key == "" {
			return nil, settings.ErrInvalidKey
		}
		if !settings.ValidGroup(item.Group) {
			return nil, settings.ErrInvalidGroup
		}
		toWrite = append(toWrite, &settings.Setting{
			Key:   item.Key,
			Value: item.Value,
			Group: item.Group,
		})
	}

	if err := s.repo.Upsert(ctx, toWrite); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, shared.KeyAppearanceSettings); err != nil {
		logger.Warn("Failed to invalidate appearance cache", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Settings updated", map[string]interface{}{
		"count": len(toWrite),
	})

	return s.repo.List(ctx, "")
}
