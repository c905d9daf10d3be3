package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config describes the Redis connection sourced from the environment. URL is
// optional; callers fall back to in-memory storage when it is empty.
type Config struct {
	URL          string        `split_words:"true"`
	ReadTimeout  time.Duration `split_words:"true" default:"3s"`
	WriteTimeout time.Duration `split_words:"true" default:"3s"`
	DialTimeout  time.Duration `split_words:"true" default:"5s"`
}

// Enabled reports whether a Redis URL was configured.
func (r *Config) Enabled() bool {
	return r.URL != ""
}

// New builds a client from the config and verifies connectivity with a ping.
func (r *Config) New(ctx context.Context) (*redis.Client, error) {
	opts, err := redis.ParseURL(r.URL)
	if err != nil {
		return nil, err
	}

	opts.ReadTimeout = r.ReadTimeout
	opts.WriteTimeout = r.WriteTimeout
	opts.DialTimeout = r.DialTimeout

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
