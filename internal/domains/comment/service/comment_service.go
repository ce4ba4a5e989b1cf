package service

import (
	"context"

	"github.com/google/uuid"

	"memepmw-backend/internal/domains/comment"
	"memepmw-backend/pkg/logger"
)

type commentService struct {
	repo comment.Repository
}

func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

func (s *commentService) Create(ctx context.Context, articleID uuid.UUID, req *comment.CreateCommentReq) (*comment.CommentResp, error) {
	entity, err := comment.NewComment(articleID, req.AuthorName, req.Content)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	logger.Info("Comment created", map[string]interface{}{
		"comment_id": created.ID,
		"article_id": created.ArticleID,
	})

	return comment.CommentToResp(created), nil
}

func (s *commentService) ListForArticle(ctx context.Context, articleID uuid.UUID) ([]*comment.CommentResp, error) {
	comments, err := s.repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	resp := make([]*comment.CommentResp, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, comment.CommentToResp(c))
	}

	return resp, nil
}

func (s *commentService) ListAll(ctx context.Context, status string, page, limit int) ([]*comment.CommentResp, int, error) {
	if status != "" && !comment.ValidStatus(status) {
		return nil, 0, comment.ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	comments, total, err := s.repo.ListAll(ctx, status, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]*comment.CommentResp, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, comment.CommentToResp(c))
	}

	return resp, total, nil
}

func (s *commentService) Moderate(ctx context.Context, id uuid.UUID, req *comment.ModerateCommentReq) (*comment.CommentResp, error) {
	if !comment.ValidStatus(req.Status) {
		return nil, comment.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return nil, err
	}

	logger.Info("Comment moderated", map[string]interface{}{
		"comment_id": updated.ID,
		"status":     updated.Status,
	})

	return comment.CommentToResp(updated), nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Comment deleted", map[string]interface{}{"comment_id": id})
	return nil
}
