package main

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/config"
	"storefront-backend/internal/shared"
)

// newScheduler registers the recurring jobs: the hourly expired-promotion
// sweep and the nightly stale-cart purge.
func newScheduler(cfg *config.Config) *asynq.Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		nil,
	)

	register := func(spec, taskType, queue string) {
		task := asynq.NewTask(taskType, nil)
		if _, err := scheduler.Register(spec, task, asynq.Queue(queue)); err != nil {
			log.Fatal().Err(err).Str("task", taskType).Msg("Failed to register scheduled task")
		}
	}

	register("@every 1h", shared.TypeDeactivateExpiredPromos, shared.QueuePromotion)
	register("0 3 * * *", shared.TypePurgeStaleCarts, shared.QueueCart)

	return scheduler
}
