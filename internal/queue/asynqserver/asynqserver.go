package asynqserver

import (
	"context"

	"github.com/hotel-booking/backend/internal/cache"
	"github.com/hotel-booking/backend/internal/config"
	"github.com/hotel-booking/backend/internal/queue/processor"
	"github.com/hotel-booking/backend/internal/queue/task"
	"github.com/hotel-booking/backend/internal/worker"
	"github.com/hotel-booking/backend/pkg/logger"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func New(cfg *config.Config, workers *worker.Workers) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(workers)
	srv := asynq.NewServer(
		RedisOptions(cfg.Cache),
		asynq.Config{
			Concurrency: cfg.Queue.Concurrency,
			LogLevel:    asynq.ErrorLevel,
			Queues:      queues,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, t *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				logger.Error("task failed",
					zap.String("type", t.Type()),
					zap.Int("retried", retried),
					zap.Error(err),
				)
			}),
		},
	)

	return srv, mux
}

func RedisOptions(cfg config.Cache) asynq.RedisConnOpt {
	if cfg.Type == cache.RedisTypeCluster {
		return asynq.RedisClusterClientOpt{Addrs: cfg.RedisCluster.Addresses, Password: cfg.RedisCluster.Password}
	}
	return asynq.RedisClientOpt{Addr: cfg.Redis.Address, Password: cfg.Redis.Password}
}

func getQueues(workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(task.SendEmailTaskName, processor.NewSendEmailProcessor(workers))
	queues := map[string]int{
		task.SendEmailQueueName: 1,
	}
	return mux, queues
}
