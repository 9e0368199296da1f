package main

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/grievance-service/internal/config"
	"github.com/spec-kit/grievance-service/internal/persistence"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func TestReadinessSkipsRedisWhenCacheDisabled(t *testing.T) {
	deps := readinessDependencies(okPinger{}, nil)

	assert.Len(t, deps, 1)
	assert.Contains(t, deps, "postgres")
	assert.NotContains(t, deps, "redis")
	assert.Nil(t, answerCache(nil, config.CompletionConfig{CacheTTLSeconds: 60}))
}

func TestReadinessIncludesRedisWhenCacheEnabled(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	rdb := &persistence.Redis{Client: client}
	defer rdb.Close()

	deps := readinessDependencies(okPinger{}, rdb)

	assert.Len(t, deps, 2)
	assert.Same(t, rdb, deps["redis"])
	assert.NotNil(t, answerCache(rdb, config.CompletionConfig{CacheTTLSeconds: 60}))
}
