package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientOnce sync.Once
	clientErr  error
)

// Config holds Redis connection configuration
type Config struct {
	URL      string // Upstash Redis URL (redis://...) or (rediss://... for TLS)
	Password string // Upstash Redis password
}

// Init initializes the singleton Redis client. Safe to call more than once;
// only the first call constructs the client. An empty URL leaves the client
// nil and callers fall back to in-memory behaviour.
func Init(cfg Config) error {
	clientOnce.Do(func() {
		if cfg.URL == "" {
			return
		}

		parsed, err := url.Parse(cfg.URL)
		if err != nil {
			clientErr = fmt.Errorf("redis: invalid URL: %w", err)
			return
		}

		opts := &redis.Options{
			Addr:         parsed.Host,
			Password:     cfg.Password,
			DialTimeout:  3 * time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
		}
		if parsed.Scheme == "rediss" {
			opts.TLSConfig = &tls.Config{ServerName: parsed.Hostname()}
		}
		if opts.Password == "" {
			if pw, ok := parsed.User.Password(); ok {
				opts.Password = pw
			}
		}

		c := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := c.Ping(ctx).Err(); err != nil {
			clientErr = fmt.Errorf("redis: ping failed: %w", err)
			_ = c.Close()
			return
		}

		client = c
	})
	return clientErr
}

// Client returns the singleton Redis client, or nil when Redis is not
// configured or the connection failed.
func Client() *redis.Client {
	return client
}

// HealthCheck performs a health check on the Redis connection.
// Returns nil if healthy, error otherwise.
func HealthCheck(ctx context.Context) error {
	if client == nil {
		return errors.New("redis: client not initialized")
	}
	return client.Ping(ctx).Err()
}

// Close closes the Redis connection gracefully.
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}
