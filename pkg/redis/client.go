package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Package-global client. The portfolio aggregate cache is the main consumer;
// callers check GetClient for nil so the service runs fine without redis.
var client *redis.Client

// Init connects and pings; a dead redis fails startup.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}

	if password != "" {
		opts.Password = password
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}

	return nil
}

// SetClient swaps the client; tests point it at miniredis (and back to nil).
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the current client, nil when redis was never initialized.
func GetClient() *redis.Client {
	return client
}

// Set stores a value under key with a TTL.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, key, value, expiration).Err()
}

// Get returns the string value under key.
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

// Del removes a key, used for cache invalidation after writes.
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX sets a key only when absent.
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}
