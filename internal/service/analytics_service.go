package service

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/model"
	"Bonjour/internal/pkg/cache"
	"Bonjour/internal/pkg/consts"
	"Bonjour/internal/pkg/timeseries"
	"Bonjour/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type AnalyticsService interface {
	// GetSeries 按平台聚合指定窗口的指标序列。
	// 返回结构以平台名为键，另带 metric / timeRange 回显字段
	GetSeries(ctx context.Context, brandID uint64, platform, timeRange, metric string) (map[string]interface{}, error)
	// GetFollowerStats 各平台最新粉丝数及月环比
	GetFollowerStats(ctx context.Context, brandID uint64, platform string) (*dto.FollowerStatsDTO, error)
	// GetOverview 当月 KPI 合计与上月环比
	GetOverview(ctx context.Context, brandID uint64) (*dto.OverviewDTO, error)
}

type analyticsServiceImpl struct {
	statRepo    repository.StatRepo
	cache       cache.Cache
	seriesTTL   time.Duration
	followerTTL time.Duration
	now         func() time.Time
}

func NewAnalyticsService(
	statRepo repository.StatRepo,
	c cache.Cache,
	seriesTTL time.Duration,
	followerTTL time.Duration,
) AnalyticsService {
	return &analyticsServiceImpl{
		statRepo:    statRepo,
		cache:       c,
		seriesTTL:   seriesTTL,
		followerTTL: followerTTL,
		now:         time.Now,
	}
}

// resolvePlatforms 把选择器展开成目标平台集合，未知平台直接报错
func resolvePlatforms(selector string) ([]string, error) {
	if selector == model.PlatformAll {
		return model.AllPlatforms, nil
	}
	if !model.IsValidPlatform(selector) {
		return nil, ErrPlatformInvalid
	}
	return []string{selector}, nil
}

func (s *analyticsServiceImpl) GetSeries(ctx context.Context, brandID uint64, platform, timeRange, metric string) (map[string]interface{}, error) {
	// 入参校验必须在任何查询之前完成，未知关键字不做兜底
	if brandID == 0 {
		return nil, UnauthorizedError
	}
	r, err := timeseries.ParseRange(timeRange)
	if err != nil {
		return nil, ErrTimeRangeInvalid
	}
	if !model.IsValidMetric(metric) {
		return nil, ErrMetricInvalid
	}
	platforms, err := resolvePlatforms(platform)
	if err != nil {
		return nil, err
	}

	key := cache.Key(consts.AnalyticsSeriesKey,
		strconv.FormatUint(brandID, 10), platform, timeRange, metric)
	if data, ok := s.cache.Get(ctx, key); ok {
		var cached map[string]interface{}
		if err = json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	now := s.now()
	start, end := r.Window(now)

	// 整个平台集合只查一次，避免 N+1
	rows, err := s.statRepo.GetDailyStats(ctx, repository.StatQuery{
		BrandID:   brandID,
		Platforms: platforms,
		Start:     start,
		End:       end,
	})
	if err != nil {
		return nil, err
	}

	pointsByPlatform := make(map[string][]timeseries.Point, len(platforms))
	for _, row := range rows {
		pointsByPlatform[row.Platform] = append(pointsByPlatform[row.Platform], timeseries.Point{
			Date:  row.StatDate,
			Value: row.MetricValue(metric),
		})
	}

	result := make(map[string]interface{}, len(platforms)+2)
	for _, p := range platforms {
		result[p] = r.Bucketize(now, pointsByPlatform[p])
	}
	result["metric"] = metric
	result["timeRange"] = timeRange

	s.cacheResult(ctx, key, result, s.seriesTTL)
	return result, nil
}

func (s *analyticsServiceImpl) GetFollowerStats(ctx context.Context, brandID uint64, platform string) (*dto.FollowerStatsDTO, error) {
	if brandID == 0 {
		return nil, UnauthorizedError
	}
	platforms, err := resolvePlatforms(platform)
	if err != nil {
		return nil, err
	}

	key := cache.Key(consts.AnalyticsFollowerKey,
		strconv.FormatUint(brandID, 10), platform)
	if data, ok := s.cache.Get(ctx, key); ok {
		var cached dto.FollowerStatsDTO
		if err = json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	result := &dto.FollowerStatsDTO{
		Platforms: make([]*dto.FollowerPlatformDTO, 0, len(platforms)),
	}
	for _, p := range platforms {
		snapshots, err := s.statRepo.GetLatestSnapshots(ctx, brandID, p, 2)
		if err != nil {
			return nil, err
		}

		entry := &dto.FollowerPlatformDTO{Platform: p}
		if len(snapshots) > 0 {
			entry.Followers = snapshots[0].Followers
			entry.AsOf = snapshots[0].SnapshotDate.Format("2006-01")
		}
		// 不足两期快照视为无基准，增长为 0
		if len(snapshots) > 1 {
			entry.Growth = timeseries.Growth(
				float64(snapshots[0].Followers),
				float64(snapshots[1].Followers),
			)
		}
		result.Platforms = append(result.Platforms, entry)
		result.Total += entry.Followers
	}

	s.cacheResult(ctx, key, result, s.followerTTL)
	return result, nil
}

func (s *analyticsServiceImpl) GetOverview(ctx context.Context, brandID uint64) (*dto.OverviewDTO, error) {
	if brandID == 0 {
		return nil, UnauthorizedError
	}

	key := cache.Key(consts.AnalyticsOverviewKey, strconv.FormatUint(brandID, 10))
	if data, ok := s.cache.Get(ctx, key); ok {
		var cached dto.OverviewDTO
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	now := s.now()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart := currentStart.AddDate(0, -1, 0)

	current, err := s.statRepo.SumInWindow(ctx, brandID, currentStart, now)
	if err != nil {
		return nil, err
	}
	previous, err := s.statRepo.SumInWindow(ctx, brandID, previousStart, currentStart.Add(-time.Second))
	if err != nil {
		return nil, err
	}

	result := &dto.OverviewDTO{
		Reach: &dto.KpiDTO{
			Value:  float64(current.Reach),
			Growth: timeseries.Growth(float64(current.Reach), float64(previous.Reach)),
		},
		Views: &dto.KpiDTO{
			Value:  float64(current.Views),
			Growth: timeseries.Growth(float64(current.Views), float64(previous.Views)),
		},
		Engagement: &dto.KpiDTO{
			Value:  float64(current.Engagement),
			Growth: timeseries.Growth(float64(current.Engagement), float64(previous.Engagement)),
		},
		EngagementRate: &dto.KpiDTO{
			Value: engagementRate(current),
			Growth: timeseries.GrowthRate(
				engagementRate(current),
				engagementRate(previous),
			),
		},
	}

	s.cacheResult(ctx, key, result, s.seriesTTL)
	return result, nil
}

// engagementRate 互动量占触达量的百分比，保留 2 位小数
func engagementRate(t *repository.StatTotals) float64 {
	if t.Reach == 0 {
		return 0
	}
	return timeseries.Round2(float64(t.Engagement) / float64(t.Reach) * 100)
}

// cacheResult 缓存写失败只能降级为下次重算，绝不影响本次请求
func (s *analyticsServiceImpl) cacheResult(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, key, data, ttl)
}
