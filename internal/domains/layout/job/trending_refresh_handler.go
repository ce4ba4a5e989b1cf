package job

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"memepmw-backend/internal/domains/article"
	"memepmw-backend/internal/shared"
	"memepmw-backend/pkg/cache"
	"memepmw-backend/pkg/logger"
)

type TrendingRefreshPayload struct {
	Size int `json:"size"`
}

// TrendingRefreshHandler recomputes the most-read and most-commented
// article id lists and stores them in Redis for the sidebar blocks.
type TrendingRefreshHandler struct {
	articleRepo article.Repository
	cache       cache.Cache
}

func NewTrendingRefreshHandler(articleRepo article.Repository, c cache.Cache) *TrendingRefreshHandler {
	return &TrendingRefreshHandler{
		articleRepo: articleRepo,
		cache:       c,
	}
}

func (h *TrendingRefreshHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload TrendingRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("TrendingRefresh: unmarshal payload failed", err)
		return err
	}

	size := payload.Size
	if size <= 0 {
		size = 10
	}

	mostRead, err := h.articleRepo.TopByViews(ctx, size)
	if err != nil {
		logger.Error("TrendingRefresh: top by views failed", err)
		return err
	}

	mostCommented, err := h.articleRepo.TopByComments(ctx, size)
	if err != nil {
		logger.Error("TrendingRefresh: top by comments failed", err)
		return err
	}

	// No TTL: the lists stay warm between refreshes and survive a
	// missed run.
	if err := h.cache.Set(ctx, shared.KeyTrendingMostRead, mostRead, 0); err != nil {
		return err
	}
	if err := h.cache.Set(ctx, shared.KeyTrendingMostCommented, mostCommented, 0); err != nil {
		return err
	}

	log.Info().
		Int("most_read", len(mostRead)).
		Int("most_commented", len(mostCommented)).
		Msg("Trending lists refreshed")

	return nil
}
