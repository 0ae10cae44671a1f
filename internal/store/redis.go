package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lox/mdftrainer/internal/score"
)

// DefaultKeyPrefix namespaces the trainer's keys in a shared database.
const DefaultKeyPrefix = "mdftrainer"

// RedisStore keeps the score as a hash of flat counters.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to the server at url (redis://host:port/db) and
// checks it answers before returning.
func NewRedisStore(ctx context.Context, url, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, key: scoreKey(prefix)}, nil
}

func scoreKey(prefix string) string {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return prefix + ":score"
}

func (r *RedisStore) LoadScore(ctx context.Context) (score.RunningScore, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return score.RunningScore{}, fmt.Errorf("failed to load score: %w", err)
	}
	return score.FromFields(fields)
}

func (r *RedisStore) SaveScore(ctx context.Context, s score.RunningScore) error {
	values := make(map[string]interface{}, 4)
	for k, v := range s.Fields() {
		values[k] = v
	}
	if err := r.client.HSet(ctx, r.key, values).Err(); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
