package wire

import (
	"Bonjour/internal/api"
	"Bonjour/internal/api/config"
	"Bonjour/internal/api/handler"
	"Bonjour/internal/job"
	"Bonjour/internal/pkg/cache"
	"Bonjour/internal/pkg/cron"
	"Bonjour/internal/pkg/redis"
	"Bonjour/internal/repository"
	"Bonjour/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

// newResponseCache 按配置选择缓存后端，默认进程内缓存
func newResponseCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.DisableCaching {
		return cache.NewNoop()
	}
	if cfg.Cache.Backend == "redis" {
		return cache.NewRedis(redis.GetRdbClient(), cfg.Cache.KeyPrefix)
	}
	return cache.NewMemory()
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	statRepo := repository.NewStatRepository(db)
	postRepo := repository.NewPostRepository(db)
	lookbookRepo := repository.NewLookbookRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	taskRepo := repository.NewWeeklyTaskRepository(db)
	channelRepo := repository.NewChannelRepository(db)

	responseCache := newResponseCache(cfg)

	authService := service.NewAuthService(userRepo, brandRepo)
	analyticsService := service.NewAnalyticsService(
		statRepo,
		responseCache,
		time.Duration(cfg.Cache.SeriesTTL)*time.Minute,
		time.Duration(cfg.Cache.FollowerTTL)*time.Minute,
	)
	postService := service.NewPostService(postRepo)
	lookbookService := service.NewLookbookService(lookbookRepo)
	orderService := service.NewOrderService(orderRepo)
	taskService := service.NewWeeklyTaskService(taskRepo)
	channelService := service.NewChannelService(channelRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:      handler.NewAuthHandler(authService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		DashboardHandler: handler.NewDashboardHandler(analyticsService, taskService),
		PostHandler:      handler.NewPostHandler(postService),
		LookbookHandler:  handler.NewLookbookHandler(lookbookService),
		OrderHandler:     handler.NewOrderHandler(orderService),
		ChannelHandler:   handler.NewChannelHandler(channelService),
		MediaHandler:     handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewPublishPostJob(postRepo),
		job.NewCacheCleanJob(responseCache),
	)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
