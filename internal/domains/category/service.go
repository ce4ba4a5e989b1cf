package category

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the category domain.
type Service interface {
	Create(ctx context.Context, req *CreateCategoryReq) (*CategoryResp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryResp, error)
	GetBySlug(ctx context.Context, slug string) (*CategoryResp, error)
	List(ctx context.Context, onlyActive bool) ([]*CategoryResp, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryReq) (*CategoryResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
