// internal/genai/cache.go
package genai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"synthgen/internal/common/database"
	"synthgen/internal/common/logger"
	"synthgen/internal/common/metrics"
)

// CachedGenerator wraps a TextGenerator with a Redis response cache. The key
// covers model and prompt but not the sampled decoding parameters, so
// repeated runs reuse completions for prompts they have seen before at the
// cost of some textual variety. Cache failures degrade to the inner
// generator, never to an error.
type CachedGenerator struct {
	inner  TextGenerator
	cache  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

// NewCachedGenerator decorates inner with a response cache.
func NewCachedGenerator(inner TextGenerator, cache *database.RedisClient, ttl time.Duration, log logger.Logger) *CachedGenerator {
	return &CachedGenerator{
		inner: inner,
		cache: cache,
		ttl:   ttl,
		logger: log.With(map[string]interface{}{
			"component": "genai-cache",
		}),
	}
}

// Model returns the wrapped generator's model name.
func (g *CachedGenerator) Model() string {
	return g.inner.Model()
}

// Generate returns a cached completion when one exists, otherwise delegates
// to the inner generator and stores its result.
func (g *CachedGenerator) Generate(ctx context.Context, prompt string, params SampleParams) (string, error) {
	key := g.cacheKey(prompt)

	cached, err := g.cache.Get(ctx, key)
	if err == nil && cached != "" {
		metrics.CacheHits.Inc()
		return cached, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		g.logger.Warn("cache read failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	metrics.CacheMisses.Inc()

	text, err := g.inner.Generate(ctx, prompt, params)
	if err != nil {
		return "", err
	}

	if err := g.cache.Set(ctx, key, text, g.ttl); err != nil {
		g.logger.Warn("cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return text, nil
}

func (g *CachedGenerator) cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s", g.inner.Model(), prompt)))
	return "synthgen:genai:" + hex.EncodeToString(sum[:])
}
