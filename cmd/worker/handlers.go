package main

import (
	"github.com/hibiken/asynq"

	articleJob "memepmw-backend/internal/domains/article/job"
	commentJob "memepmw-backend/internal/domains/comment/job"
	layoutJob "memepmw-backend/internal/domains/layout/job"
	"memepmw-backend/internal/shared"
	"memepmw-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	trendingRefresh *layoutJob.TrendingRefreshHandler
	publishDue      *articleJob.PublishDueHandler
	purgeRejected   *commentJob.PurgeRejectedHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		trendingRefresh: layoutJob.NewTrendingRefreshHandler(c.ArticleRepo, c.Cache),
		publishDue:      articleJob.NewPublishDueHandler(c.ArticleRepo),
		purgeRejected:   commentJob.NewPurgeRejectedHandler(c.CommentRepo),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeTrendingRefresh, h.trendingRefresh.ProcessTask)
	mux.HandleFunc(shared.TypeArticlePublishDue, h.publishDue.ProcessTask)
	mux.HandleFunc(shared.TypeCommentPurgeRejected, h.purgeRejected.ProcessTask)
}
