package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/i474232898/overcast/internal/weather"
)

// ForecastKeyFormat is the redis key of a cached forecast per location key.
const ForecastKeyFormat = "forecast_v1:%s"

// RedisStore caches forecasts in redis so several instances share them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps client; entries expire after ttl (0 = never).
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// SaveSnapshot stores the snapshot as JSON.
func (s *RedisStore) SaveSnapshot(ctx context.Context, key string, snapshot weather.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast for %s: %w", key, err)
	}
	if err := s.client.Set(ctx, fmt.Sprintf(ForecastKeyFormat, key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set forecast in redis: %w", err)
	}
	return nil
}

// GetLatest loads the snapshot for key.
func (s *RedisStore) GetLatest(ctx context.Context, key string) (weather.Snapshot, error) {
	str, err := s.client.Get(ctx, fmt.Sprintf(ForecastKeyFormat, key)).Result()
	if errors.Is(err, redis.Nil) {
		return weather.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("failed to get forecast from redis: %w", err)
	}

	var snap weather.Snapshot
	if err := json.Unmarshal([]byte(str), &snap); err != nil {
		return weather.Snapshot{}, fmt.Errorf("failed to unmarshal forecast JSON: %w", err)
	}
	return snap, nil
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
