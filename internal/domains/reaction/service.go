package reaction

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the reaction domain.
type Service interface {
	// React records one reaction of the given kind and returns the
	// updated counts for the article.
	React(ctx context.Context, articleID uuid.UUID, req *ReactReq) (*CountsResp, error)

	// Counts returns the per-kind counts for an article.
	Counts(ctx context.Context, articleID uuid.UUID) (*CountsResp, error)
}
