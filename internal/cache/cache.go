// Package cache keeps recent extractor responses so a hub-page choice
// round trip (choice event, then resubmit with chosenUrl) does not
// re-download the page. Cache trouble never fails a request.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitellieburger/ask-better-questions/pkg/extract"
)

const (
	keyPrefix = "abq:extract:"
	ttl       = 15 * time.Minute
)

type ExtractCache interface {
	Get(ctx context.Context, url string) (*extract.Response, bool)
	Set(ctx context.Context, url string, resp *extract.Response)
}

// Redis is the process-wide cache used when REDIS_URL is configured.
type Redis struct {
	client *redis.Client
}

func NewRedis(redisURL string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client}, nil
}

func (c *Redis) Close() error {
	return c.client.Close()
}

func (c *Redis) Get(ctx context.Context, url string) (*extract.Response, bool) {
	raw, err := c.client.Get(ctx, keyPrefix+url).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("extract cache get failed", "error", err, "url", url)
		}
		return nil, false
	}

	var resp extract.Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		slog.Warn("extract cache entry corrupt", "error", err, "url", url)
		return nil, false
	}

	return &resp, true
}

func (c *Redis) Set(ctx context.Context, url string, resp *extract.Response) {
	raw, err := json.Marshal(resp)
	if err != nil {
		slog.Warn("extract cache marshal failed", "error", err, "url", url)
		return
	}

	if err := c.client.Set(ctx, keyPrefix+url, raw, ttl).Err(); err != nil {
		slog.Warn("extract cache set failed", "error", err, "url", url)
	}
}

// Noop is injected when no cache backend is configured.
type Noop struct{}

func (Noop) Get(ctx context.Context, url string) (*extract.Response, bool) { return nil, false }

func (Noop) Set(ctx context.Context, url string, resp *extract.Response) {}
