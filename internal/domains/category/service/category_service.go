package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"memepmw-backend/internal/domains/category"
	"memepmw-backend/pkg/logger"
)

type categoryServiceImpl struct {
	repository category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryServiceImpl{
		repository: repo,
	}
}

func (s *categoryServiceImpl) Create(ctx context.Context, req *category.CreateCategoryReq) (*category.CategoryResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create category: invalid request")
	}

	entity, err := category.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	slugExists, err := s.repository.ExistsBySlug(ctx, entity.Slug, nil)
	if err != nil {
		logger.Error("Create: check slug exists failed", err)
		return nil, fmt.Errorf("create category: failed to verify slug uniqueness")
	}
	if slugExists {
		return nil, category.ErrDuplicateSlug
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.Error("Create: repository create failed", err)
		return nil, err
	}

	return category.CategoryToResp(created), nil
}

func (s *categoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*category.CategoryResp, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("get category: invalid id")
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return category.CategoryToResp(entity), nil
}

func (s *categoryServiceImpl) GetBySlug(ctx context.Context, slug string) (*category.CategoryResp, error) {
	if slug == "" {
		return nil, fmt.Errorf("get category: invalid slug")
	}

	entity, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return category.CategoryToResp(entity), nil
}

func (s *categoryServiceImpl) List(ctx context.Context, onlyActive bool) ([]*category.CategoryResp, error) {
	entities, err := s.repository.List(ctx, onlyActive)
	if err != nil {
		logger.Error("List: repository list failed", err)
		return nil, fmt.Errorf("list categories: failed to fetch")
	}

	resps := make([]*category.CategoryResp, 0, len(entities))
	for _, entity := range entities {
		resps = append(resps, category.CategoryToResp(entity))
	}

	return resps, nil
}

func (s *categoryServiceImpl) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryReq) (*category.CategoryResp, error) {
	if req == nil {
		return nil, fmt.Errorf("update category: invalid request")
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := entity.Rename(*req.Name); err != nil {
			return nil, err
		}

		slugExists, err := s.repository.ExistsBySlug(ctx, entity.Slug, &id)
		if err != nil {
			logger.Error("Update: check slug exists failed", err)
			return nil, fmt.Errorf("update category: failed to verify slug uniqueness")
		}
		if slugExists {
			return nil, category.ErrDuplicateSlug
		}
	}
	if req.Description != nil {
		entity.Description = req.Description
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	updated, err := s.repository.Update(ctx, entity)
	if err != nil {
		logger.Error("Update: repository update failed", err)
		return nil, err
	}

	return category.CategoryToResp(updated), nil
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.repository.CountArticles(ctx, id)
	if err != nil {
		logger.Error("Delete: count articles failed", err)
		return fmt.Errorf("delete category: failed to check usage")
	}
	if count > 0 {
		return category.ErrCategoryInUse
	}

	return s.repository.Delete(ctx, id)
}
