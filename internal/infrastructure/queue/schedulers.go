package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"memepmw-backend/internal/config"
	articleJob "memepmw-backend/internal/domains/article/job"
	commentJob "memepmw-backend/internal/domains/comment/job"
	layoutJob "memepmw-backend/internal/domains/layout/job"
	"memepmw-backend/internal/shared"
	"memepmw-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterJobs() error {
	if err := s.registerTrendingRefreshJob(); err != nil {
		return err
	}

	if err := s.registerPublishDueJob(); err != nil {
		return err
	}

	if err := s.registerPurgeRejectedJob(); err != nil {
		return err
	}

	return nil
}

// ================================================
// JOB 1: Trending Refresh (every 10 minutes)
// ================================================
func (s *Scheduler) registerTrendingRefreshJob() error {
	payload, err := json.Marshal(layoutJob.TrendingRefreshPayload{Size: s.jobConfig.TrendingSize})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeTrendingRefresh, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.TrendingRefreshCron,
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register TrendingRefresh job", err)
		return err
	}

	logger.Info("✓ Registered TrendingRefresh", map[string]interface{}{
		"cron": s.jobConfig.TrendingRefreshCron,
	})
	return nil
}

// ================================================
// JOB 2: Publish Due Articles (every minute)
// ================================================
func (s *Scheduler) registerPublishDueJob() error {
	payload, err := json.Marshal(articleJob.PublishDuePayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeArticlePublishDue, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.PublishDueCron,
		task,
		asynq.Queue(shared.QueueHigh),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register PublishDue job", err)
		return err
	}

	logger.Info("✓ Registered PublishDue", map[string]interface{}{
		"cron": s.jobConfig.PublishDueCron,
	})
	return nil
}

// ================================================
// JOB 3: Purge Rejected Comments (daily at 3 AM)
// ================================================
func (s *Scheduler) registerPurgeRejectedJob() error {
	payload, err := json.Marshal(commentJob.PurgeRejectedPayload{
		RetentionDays: s.jobConfig.RejectedRetentionDays,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeCommentPurgeRejected, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.PurgeRejectedCron,
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register PurgeRejected job", err)
		return err
	}

	logger.Info("✓ Registered PurgeRejected", map[string]interface{}{
		"cron": s.jobConfig.PurgeRejectedCron,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
