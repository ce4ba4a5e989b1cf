package article

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service defines business operations for the article domain.
type Service interface {
	Create(ctx context.Context, authorID uuid.UUID, req *CreateArticleReq) (*ArticleResp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ArticleResp, error)

	// GetBySlug serves public article pages and increments the view counter.
	GetBySlug(ctx context.Context, slug string) (*ArticleResp, error)

	ListPublished(ctx context.Context, q *ListQuery) ([]*ArticleResp, int, error)
	ListAll(ctx context.Context, page, limit int) ([]*ArticleResp, int, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*ArticleResp, error)

	Update(ctx context.Context, id uuid.UUID, req *UpdateArticleReq) (*ArticleResp, error)
	Publish(ctx context.Context, id uuid.UUID, req *PublishArticleReq) (*ArticleResp, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*ArticleResp, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// UploadImage stores a cover image in object storage and returns its URL.
	UploadImage(ctx context.Context, id uuid.UUID, filename, contentType string, data []byte) (string, error)

	// ExportXLSX produces an admin spreadsheet of all articles.
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type PublishArticleReq struct {
	// At schedules publication; nil publishes immediately.
	At *time.Time `json:"at,omitempty"`
}
