package shared

// Asynq task types.
const (
	TypeTrendingRefresh      = "layout:refresh_trending"
	TypeArticlePublishDue    = "article:publish_due"
	TypeCommentPurgeRejected = "comment:purge_rejected"
)

// Asynq queue names.
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// Redis keys shared between the API and the worker.
const (
	KeyTrendingMostRead      = "trending:most_read"
	KeyTrendingMostCommented = "trending:most_commented"
	KeyAppearanceSettings    = "settings:appearance"
	KeyActiveLayout          = "layout:active"
)
