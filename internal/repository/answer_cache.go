package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const answerKeyPrefix = "faq:answer:"

// AnswerCache stores generated answers keyed by question.
type AnswerCache interface {
	Get(ctx context.Context, question string) (string, bool, error)
	Set(ctx context.Context, question, answer string) error
}

type redisAnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAnswerCache returns a cache backed by Redis. A nil client or a
// non-positive ttl yields nil, which callers treat as caching disabled.
func NewRedisAnswerCache(client *redis.Client, ttl time.Duration) AnswerCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &redisAnswerCache{client: client, ttl: ttl}
}

func (c *redisAnswerCache) Get(ctx context.Context, question string) (string, bool, error) {
	val, err := c.client.Get(ctx, AnswerKey(question)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *redisAnswerCache) Set(ctx context.Context, question, answer string) error {
	return c.client.Set(ctx, AnswerKey(question), answer, c.ttl).Err()
}

// AnswerKey normalizes the question so trivially different spellings share
// an entry.
func AnswerKey(question string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(question))))
	return answerKeyPrefix + hex.EncodeToString(sum[:])
}
