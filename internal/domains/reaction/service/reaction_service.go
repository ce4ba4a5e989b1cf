package service

import (
	"context"

	"github.com/google/uuid"

	"memepmw-backend/internal/domains/reaction"
	"memepmw-backend/pkg/logger"
)

type reactionService struct {
	repo reaction.Repository
}

func NewReactionService(repo reaction.Repository) reaction.Service {
	return &reactionService{repo: repo}
}

func (s *reactionService) React(ctx context.Context, articleID uuid.UUID, req *reaction.ReactReq) (*reaction.CountsResp, error) {
	if !reaction.ValidKind(req.Kind) {
		return nil, reaction.ErrUnknownKind
	}

	count, err := s.repo.Increment(ctx, articleID, req.Kind)
	if err != nil {
		return nil, err
	}

	logger.Debug("Reaction recorded", map[string]interface{}{
		"article_id": articleID,
		"kind":       req.Kind,
		"count":      count,
	})

	return s.Counts(ctx, articleID)
}

func (s *reactionService) Counts(ctx context.Context, articleID uuid.UUID) (*reaction.CountsResp, error) {
	rows, err := s.repo.CountsByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	return reaction.NewCountsResp(rows), nil
}
