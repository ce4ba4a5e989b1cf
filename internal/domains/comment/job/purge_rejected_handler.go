package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"memepmw-backend/internal/domains/comment"
	"memepmw-backend/pkg/logger"
)

type PurgeRejectedPayload struct {
	RetentionDays int `json:"retention_days"`
}

// PurgeRejectedHandler deletes rejected comments past the retention window.
type PurgeRejectedHandler struct {
	commentRepo comment.Repository
}

func NewPurgeRejectedHandler(commentRepo comment.Repository) *PurgeRejectedHandler {
	return &PurgeRejectedHandler{
		commentRepo: commentRepo,
	}
}

func (h *PurgeRejectedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload PurgeRejectedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("PurgeRejected: unmarshal payload failed", err)
		return err
	}

	days := payload.RetentionDays
	if days <= 0 {
		days = 30
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	purged, err := h.commentRepo.PurgeRejectedBefore(ctx, cutoff)
	if err != nil {
		logger.Error("PurgeRejected: repository delete failed", err)
		return err
	}

	if purged > 0 {
		log.Info().
			Int("comments_purged", purged).
			Time("cutoff", cutoff).
			Msg("Purged rejected comments")
	}

	return nil
}
