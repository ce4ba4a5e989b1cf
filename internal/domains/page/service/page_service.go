package service

import (
	"context"

	"github.com/google/uuid"

	"memepmw-backend/internal/domains/page"
	"memepmw-backend/pkg/logger"
)

type pageService struct {
	repo page.Repository
}

func NewPageService(repo page.Repository) page.Service {
	return &pageService{repo: repo}
}

func (s *pageService) Create(ctx context.Context, authorID uuid.UUID, req *page.CreatePageReq) (*page.PageResp, error) {
	entity, err := page.NewPage(req.Title, req.Content, authorID)
	if err != nil {
		return nil, err
	}
	if req.Status != "" {
		if !page.ValidStatus(req.Status) {
			return nil, page.ErrInvalidStatus
		}
		entity.Status = req.Status
	}

	exists, err := s.repo.ExistsBySlug(ctx, entity.Slug, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, page.ErrDuplicateSlug
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	logger.Info("Page created", map[string]interface{}{
		"page_id": created.ID,
		"slug":    created.Slug,
	})

	return page.PageToResp(created), nil
}

func (s *pageService) GetByID(ctx context.Context, id uuid.UUID) (*page.PageResp, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return page.PageToResp(p), nil
}

func (s *pageService) GetPublishedBySlug(ctx context.Context, slug string) (*page.PageResp, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.IsPublished() {
		return nil, page.ErrPageNotFound
	}

	return page.PageToResp(p), nil
}

func (s *pageService) List(ctx context.Context) ([]*page.PageResp, error) {
	pages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]*page.PageResp, 0, len(pages))
	for _, p := range pages {
		resp = append(resp, page.PageToResp(p))
	}

	return resp, nil
}

func (s *pageService) Update(ctx context.Context, id uuid.UUID, editorID uuid.UUID, req *page.UpdatePageReq) (*page.PageResp, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := p.Retitle(*req.Title); err != nil {
			return nil, err
		}

		exists, err := s.repo.ExistsBySlug(ctx, p.Slug, &p.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, page.ErrDuplicateSlug
		}
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Status != nil {
		if !page.ValidStatus(*req.Status) {
			return nil, page.ErrInvalidStatus
		}
		p.Status = *req.Status
	}
	p.UpdatedBy = &editorID

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	logger.Info("Page updated", map[string]interface{}{
		"page_id": updated.ID,
		"status":  updated.Status,
	})

	return page.PageToResp(updated), nil
}

func (s *pageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Page deleted", map[string]interface{}{"page_id": id})
	return nil
}
