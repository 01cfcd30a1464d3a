package job

import (
	"Bonjour/internal/pkg/consts"
	"Bonjour/internal/pkg/logger"
	"Bonjour/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// PublishPostJob 把到点的定时帖子置为已发布
type PublishPostJob struct {
	postRepo repository.PostRepo
}

func NewPublishPostJob(postRepo repository.PostRepo) *PublishPostJob {
	return &PublishPostJob{postRepo: postRepo}
}

func (s *PublishPostJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	posts, err := s.postRepo.GetDueScheduledPosts(ctx, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "查询到点定时帖子失败", "err", err)
		return
	}
	if len(posts) == 0 {
		return
	}

	published := 0
	for _, post := range posts {
		if err = s.postRepo.UpdatePostStatus(ctx, post.ID, consts.PostStatusPublished); err != nil {
			log.ErrorContext(ctx, "发布定时帖子失败", "post_id", post.ID, "err", err)
			continue
		}
		published++
		log.InfoContext(ctx, "定时帖子已发布", "post_id", post.ID, "brand_id", post.BrandID, "title", post.Title)
	}

	log.InfoContext(ctx, "定时发布任务完成", "due", len(posts), "published", published)
}
