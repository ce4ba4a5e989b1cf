package page

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the page domain.
type Service interface {
	Create(ctx context.Context, authorID uuid.UUID, req *CreatePageReq) (*PageResp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PageResp, error)

	// GetPublishedBySlug is the public read path; drafts are hidden.
	GetPublishedBySlug(ctx context.Context, slug string) (*PageResp, error)

	List(ctx context.Context) ([]*PageResp, error)
	Update(ctx context.Context, id uuid.UUID, editorID uuid.UUID, req *UpdatePageReq) (*PageResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
