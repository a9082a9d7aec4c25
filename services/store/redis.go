package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the same key → JSON document layout in Redis. Values never
// expire: this is the primary copy of the data, not a cache.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStore connects to the Redis at url and verifies the connection.
func NewRedisStore(url string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("error parsing Redis URL: %v", err)
	}
	client := redis.NewClient(opt)

	rs := &RedisStore{client: client, ctx: context.Background()}
	if err := client.Ping(rs.ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}
	log.Println("Successfully connected to Redis")
	return rs, nil
}

func (r *RedisStore) Get(key string) ([]byte, error) {
	data, err := r.client.Get(r.ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoKey
		}
		return nil, fmt.Errorf("error getting key %s: %v", key, err)
	}
	return data, nil
}

func (r *RedisStore) Set(key string, value []byte) error {
	if err := r.client.Set(r.ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("error setting key %s: %v", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(key string) error {
	if err := r.client.Del(r.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting key %s: %v", key, err)
	}
	return nil
}

func (r *RedisStore) Keys() ([]string, error) {
	keys, err := r.client.Keys(r.ctx, "*").Result()
	if err != nil {
		return nil, fmt.Errorf("error listing keys: %v", err)
	}
	return keys, nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}
