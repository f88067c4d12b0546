package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/idea-to-deploy/forge-backend/internal/logger"
)

const cacheKeyPrefix = "gen:completion:" // gen:completion:{sha256(model|prompt)}

// Cache memoizes raw completions in Redis, keyed by a digest of model and
// prompt. Only external completions are cached; fallback output is pure and
// never goes through here. Cache failures degrade to a miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log.With("component", "llm-cache"),
	}
}

func (c *Cache) Get(ctx context.Context, model, prompt string) (string, bool) {
	val, err := c.client.Get(ctx, cacheKey(model, prompt)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.log.Warn("cache get failed", "error", err)
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, model, prompt, content string) {
	if err := c.client.Set(ctx, cacheKey(model, prompt), content, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "error", err)
	}
}

func cacheKey(model, prompt string) string {
	sum := sha256.Sum256([]byte(model + "|" + prompt))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
