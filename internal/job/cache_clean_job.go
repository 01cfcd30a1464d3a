package job

import (
	"Bonjour/internal/pkg/cache"
	"Bonjour/internal/pkg/logger"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CacheCleanJob 每日清空分析响应缓存。
// 自然日切换后日桶标签整体前移，旧结果不再可用
type CacheCleanJob struct {
	responseCache cache.Cache
}

func NewCacheCleanJob(responseCache cache.Cache) *CacheCleanJob {
	return &CacheCleanJob{responseCache: responseCache}
}

func (s *CacheCleanJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.responseCache.Clear(ctx); err != nil {
		log.ErrorContext(ctx, "清空分析缓存失败", "err", err)
		return
	}
	log.InfoContext(ctx, "分析缓存已清空")
}
