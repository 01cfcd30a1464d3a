package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis 基于 go-redis 的缓存实现，多实例部署时可共享。
// keyPrefix 用于 Clear 时按前缀扫描。
type Redis struct {
	rdb       *redis.Client
	keyPrefix string
}

func NewRedis(rdb *redis.Client, keyPrefix string) *Redis {
	return &Redis{rdb: rdb, keyPrefix: keyPrefix}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.rdb.Get(ctx, r.keyPrefix+key).Bytes()
	if err != nil {
		// redis.Nil 与真实故障同样按未命中处理，保证 fail open
		return nil, false
	}
	return value, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.rdb.Set(ctx, r.keyPrefix+key, value, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.keyPrefix+key).Err()
}

func (r *Redis) Clear(ctx context.Context) error {
	iter := r.rdb.Scan(ctx, 0, r.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
