package asynqserver

import (
	"testing"

	"github.com/hotel-booking/backend/internal/cache"
	"github.com/hotel-booking/backend/internal/config"
	"github.com/hotel-booking/backend/internal/queue/task"
	"github.com/hotel-booking/backend/internal/worker"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestRedisOptions(t *testing.T) {
	var single config.Cache
	single.Type = cache.RedisTypeSingle
	single.Redis.Address = "localhost:6379"
	assert.Equal(t, asynq.RedisClientOpt{Addr: "localhost:6379"}, RedisOptions(single))

	var cluster config.Cache
	cluster.Type = cache.RedisTypeCluster
	cluster.RedisCluster.Addresses = []string{"a:7000", "b:7001"}
	assert.Equal(t, asynq.RedisClusterClientOpt{Addrs: []string{"a:7000", "b:7001"}}, RedisOptions(cluster))
}

func TestGetQueues(t *testing.T) {
	mux, queues := getQueues(&worker.Workers{})
	assert.NotNil(t, mux)
	assert.Equal(t, map[string]int{task.SendEmailQueueName: 1}, queues)
}
