package rediscache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"session-service/app/port"
)

// purgeScanBatch keys per SCAN iteration during a namespace purge
const purgeScanBatch = int64(100)

// KVStore implements port.KeyValueStore on Redis. It holds the provider's
// persisted artifacts (the session token and related cache entries), so a
// namespace purge is the storage half of clearing session state.
type KVStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewKVStore connects to Redis and verifies the connection
func NewKVStore(addr, password string, db int, logger *slog.Logger) (*KVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	logger.Info("redis connection established", "addr", addr, "db", db)

	return &KVStore{
		client: client,
		logger: logger.With("component", "kv_store"),
	}, nil
}

// NewKVStoreWithClient wraps an existing client, useful for tests
func NewKVStoreWithClient(client *redis.Client, logger *slog.Logger) *KVStore {
	return &KVStore{
		client: client,
		logger: logger.With("component", "kv_store"),
	}
}

// Close closes the underlying Redis client
func (s *KVStore) Close() error {
	return s.client.Close()
}

// HealthCheck checks if Redis is reachable
func (s *KVStore) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Get returns the value for key, or empty string when the key does not exist
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key without expiry; the namespace purge is the
// lifecycle mechanism for these entries
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// PurgeNamespace deletes every key under the prefix and reports how many were
// removed. SCAN keeps the purge incremental instead of blocking Redis the way
// KEYS would.
func (s *KVStore) PurgeNamespace(ctx context.Context, prefix string) (int, error) {
	if prefix == "" {
		return 0, fmt.Errorf("refusing to purge an empty namespace")
	}

	var (
		cursor  uint64
		removed int
	)
	pattern := prefix + "*"

	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, purgeScanBatch).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to scan namespace %s: %w", prefix, err)
		}

		if len(keys) > 0 {
			deleted, err := s.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("failed to delete keys in namespace %s: %w", prefix, err)
			}
			removed += int(deleted)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	if removed > 0 {
		s.logger.Debug("namespace purged", "prefix", prefix, "removed", removed)
	}
	return removed, nil
}

// compile-time interface check
var _ port.KeyValueStore = (*KVStore)(nil)
