package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"memepmw-backend/internal/domains/article"
	"memepmw-backend/pkg/logger"
)

type PublishDuePayload struct {
	Now time.Time `json:"now,omitempty"`
}

// PublishDueHandler flips scheduled articles to published when their
// publish time has passed.
type PublishDueHandler struct {
	articleRepo article.Repository
}

func NewPublishDueHandler(articleRepo article.Repository) *PublishDueHandler {
	return &PublishDueHandler{
		articleRepo: articleRepo,
	}
}

func (h *PublishDueHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishDuePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("PublishDue: unmarshal payload failed", err)
		return err
	}

	now := payload.Now
	if now.IsZero() {
		now = time.Now()
	}

	published, err := h.articleRepo.PublishDue(ctx, now)
	if err != nil {
		logger.Error("PublishDue: repository update failed", err)
		return err
	}

	if published > 0 {
		log.Info().
			Int("articles_published", published).
			Msg("Published scheduled articles")
	}

	return nil
}
