package cache

import (
	"context"
	"strings"
	"time"
)

// Cache 响应缓存抽象。实现必须满足：Set 整体替换条目，
// 任何读写失败都只能表现为未命中，不得影响上层计算。
type Cache interface {
	// Get 命中返回缓存值；条目已过期时视为未命中并惰性删除
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set 写入条目，过期时间为 now + ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete 删除单个条目
	Delete(ctx context.Context, key string) error
	// Clear 清空所有条目
	Clear(ctx context.Context) error
}

// Key 规范化缓存键：所有影响结果的输入逐段拼接
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
