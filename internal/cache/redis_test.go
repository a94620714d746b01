package cache

import (
	"testing"

	"github.com/hotel-booking/backend/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	var cfg config.Cache
	cfg.Type = RedisTypeSingle
	cfg.Redis.Address = mr.Addr()
	cfg.Redis.PoolSize = 5

	client, err := NewRedis(cfg)
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}

func TestNewRedis_WrongType(t *testing.T) {
	_, err := NewRedis(config.Cache{Type: "memcached"})
	assert.ErrorIs(t, err, ErrWrongRedisType)
}
