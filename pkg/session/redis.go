package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore backs sessions with redis so they survive restarts and are shared
// across instances.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func redisKey(sid, key string) string {
	return fmt.Sprintf("sess:%s:%s", sid, key)
}

func (r *RedisStore) Get(ctx context.Context, sid, key string) ([]byte, error) {
	val, err := r.rdb.Get(ctx, redisKey(sid, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *RedisStore) Set(ctx context.Context, sid, key string, val []byte) error {
	return r.rdb.Set(ctx, redisKey(sid, key), val, r.ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, sid, key string) error {
	return r.rdb.Del(ctx, redisKey(sid, key)).Err()
}
