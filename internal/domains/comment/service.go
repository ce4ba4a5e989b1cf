package comment

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the comment domain.
type Service interface {
	// Create lands a new comment in pending moderation state.
	Create(ctx context.Context, articleID uuid.UUID, req *CreateCommentReq) (*CommentResp, error)

	// ListForArticle returns the approved comments shown publicly.
	ListForArticle(ctx context.Context, articleID uuid.UUID) ([]*CommentResp, error)

	// ListAll is the moderation queue; status empty = all statuses.
	ListAll(ctx context.Context, status string, page, limit int) ([]*CommentResp, int, error)

	Moderate(ctx context.Context, id uuid.UUID, req *ModerateCommentReq) (*CommentResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
