package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"memepmw-backend/internal/domains/layout"
	"memepmw-backend/internal/domains/settings"
	"memepmw-backend/internal/shared"
	"memepmw-backend/pkg/cache"
	"memepmw-backend/pkg/logger"
)

const activeLayoutCacheTTL = 5 * time.Minute

type layoutService struct {
	repo     layout.Repository
	composer *layout.Composer
	themes   layout.ThemeSource
	cache    cache.Cache
}

func NewLayoutService(repo layout.Repository, composer *layout.Composer, themes layout.ThemeSource, c cache.Cache) layout.Service {
	return &layoutService{
		repo:     repo,
		composer: composer,
		themes:   themes,
		cache:    c,
	}
}

func (s *layoutService) Active(ctx context.Context) (*layout.LayoutResp, error) {
	var cached layout.LayoutResp
	if found, err := s.cache.Get(ctx, shared.KeyActiveLayout, &cached); err == nil && found {
		return &cached, nil
	}

	l, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	resp := layout.LayoutToResp(l)
	if err := s.cache.Set(ctx, shared.KeyActiveLayout, resp, activeLayoutCacheTTL); err != nil {
		logger.Warn("Failed to cache active layout", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return resp, nil
}

func (s *layoutService) List(ctx context.Context) ([]*layout.LayoutResp, error) {
	layouts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]*layout.LayoutResp, 0, len(layouts))
	for _, l := range layouts {
		resp = append(resp, layout.LayoutToResp(l))
	}

	return resp, nil
}

func (s *layoutService) GetByID(ctx context.Context, id uuid.UUID) (*layout.LayoutResp, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return layout.LayoutToResp(l), nil
}

func (s *layoutService) Create(ctx context.Context, userID uuid.UUID, req *layout.CreateLayoutReq) (*layout.LayoutResp, error) {
	entity, err := layout.NewPageLayout(req.Name, req.Blocks, userID)
	if err != nil {
		return nil, err
	}
	entity.IsActive = req.IsActive

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	if created.IsActive {
		s.invalidateActive(ctx)
	}

	logger.Info("Layout created", map[string]interface{}{
		"layout_id": created.ID,
		"name":      created.Name,
		"is_active": created.IsActive,
		"blocks":    len(created.Blocks),
	})

	return layout.LayoutToResp(created), nil
}

func (s *layoutService) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *layout.UpdateLayoutReq) (*layout.LayoutResp, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := *req.Name
		if name == "" || len(name) > 100 {
			return nil, layout.ErrInvalidName
		}
		l.Name = name
	}
	if req.Blocks != nil {
		for _, b := range req.Blocks {
			if !layout.ValidBlockType(b.Type) {
				return nil, layout.ErrInvalidBlockType
			}
		}
		l.Blocks = req.Blocks
	}
	l.UpdatedBy = &userID

	updated, err := s.repo.Update(ctx, l)
	if err != nil {
		return nil, err
	}

	if updated.IsActive {
		s.invalidateActive(ctx)
	}

	logger.Info("Layout updated", map[string]interface{}{
		"layout_id": updated.ID,
		"blocks":    len(updated.Blocks),
	})

	return layout.LayoutToResp(updated), nil
}

func (s *layoutService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateActive(ctx)
	logger.Info("Layout deleted", map[string]interface{}{"layout_id": id})
	return nil
}

func (s *layoutService) Activate(ctx context.Context, id uuid.UUID) (*layout.LayoutResp, error) {
	activated, err := s.repo.Activate(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateActive(ctx)

	logger.Info("Layout activated", map[string]interface{}{
		"layout_id": activated.ID,
		"name":      activated.Name,
	})

	return layout.LayoutToResp(activated), nil
}

func (s *layoutService) ApplyOp(ctx context.Context, req *layout.ApplyOpReq) (*layout.EditorStateResp, error) {
	editor := &layout.Editor{Blocks: req.Blocks, Selected: req.Selected}
	if editor.Blocks == nil {
		editor.Blocks = []layout.Block{}
	}

	switch req.Op {
	case layout.OpAdd:
		if !layout.ValidBlockType(req.Type) {
			return nil, layout.ErrInvalidBlockType
		}
		editor.AddBlock(req.Type)
	case layout.OpUpdate:
		if req.Patch != nil {
			editor.UpdateBlock(req.Index, *req.Patch)
		}
	case layout.OpDelete:
		editor.DeleteBlock(req.Index)
	case layout.OpMove:
		editor.MoveBlock(req.Index, req.Direction)
	case layout.OpSelect:
		editor.SelectBlock(req.Index)
	default:
		return nil, layout.ErrInvalidOp
	}

	return &layout.EditorStateResp{
		Blocks:   editor.Blocks,
		Selected: editor.Selected,
	}, nil
}

func (s *layoutService) ComposeHome(ctx context.Context) (*layout.ComposeResp, error) {
	var blocks []layout.Block

	active, err := s.Active(ctx)
	switch {
	case err == nil:
		blocks = active.Blocks
	case errors.Is(err, layout.ErrNoActiveLayout):
		blocks = []layout.Block{}
	default:
		return nil, err
	}

	zones, err := s.composer.Compose(ctx, blocks)
	if err != nil {
		return nil, err
	}

	theme, err := s.themes.ActiveTheme(ctx)
	if err != nil {
		// Theming must never break the page; fall back to defaults.
		logger.Warn("Failed to load theme, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		theme = settings.ThemeFromMap(nil)
	}

	return &layout.ComposeResp{Zones: zones, Theme: theme}, nil
}

func (s *layoutService) invalidateActive(ctx context.Context) {
	if err := s.cache.Delete(ctx, shared.KeyActiveLayout); err != nil {
		logger.Warn("Failed to invalidate active layout cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
