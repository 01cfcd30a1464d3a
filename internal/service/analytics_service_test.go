package service

import (
	"Bonjour/internal/model"
	"Bonjour/internal/pkg/cache"
	"Bonjour/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

var testNow = time.Date(2025, 12, 25, 10, 30, 0, 0, time.UTC)

// fakeStatRepo 内存假仓库，记录查询次数以验证缓存与校验短路
type fakeStatRepo struct {
	stats      []*model.DailyPlatformStat
	snapshots  map[string][]*model.FollowerSnapshot
	totals     map[string]*repository.StatTotals
	queryCalls int
}

func (f *fakeStatRepo) GetDailyStats(_ context.Context, q repository.StatQuery) ([]*model.DailyPlatformStat, error) {
	f.queryCalls++
	allowed := make(map[string]bool, len(q.Platforms))
	for _, p := range q.Platforms {
		allowed[p] = true
	}
	result := make([]*model.DailyPlatformStat, 0)
	for _, s := range f.stats {
		if s.BrandID != q.BrandID || !allowed[s.Platform] {
			continue
		}
		if s.StatDate.Before(q.Start) || s.StatDate.After(q.End) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeStatRepo) SumInWindow(_ context.Context, _ uint64, start, _ time.Time) (*repository.StatTotals, error) {
	f.queryCalls++
	if t, ok := f.totals[start.Format("2006-01")]; ok {
		return t, nil
	}
	return &repository.StatTotals{}, nil
}

func (f *fakeStatRepo) SaveOrUpdateStat(_ context.Context, _ *model.DailyPlatformStat) error {
	return nil
}

func (f *fakeStatRepo) GetLatestSnapshots(_ context.Context, _ uint64, platform string, count int) ([]*model.FollowerSnapshot, error) {
	f.queryCalls++
	snapshots := f.snapshots[platform]
	if len(snapshots) > count {
		snapshots = snapshots[:count]
	}
	return snapshots, nil
}

func (f *fakeStatRepo) GetLatestSnapshotBefore(_ context.Context, _ uint64, _ string, _ time.Time) (*model.FollowerSnapshot, error) {
	return nil, nil
}

// brokenCache 读写都失败，用于验证缓存故障不影响请求结果
type brokenCache struct{}

func (brokenCache) Get(_ context.Context, _ string) ([]byte, bool) { return nil, false }
func (brokenCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return errors.New("cache down")
}
func (brokenCache) Delete(_ context.Context, _ string) error { return nil }
func (brokenCache) Clear(_ context.Context) error            { return nil }

func newTestService(repo repository.StatRepo, c cache.Cache) *analyticsServiceImpl {
	s := NewAnalyticsService(repo, c, 2*time.Minute, 5*time.Minute).(*analyticsServiceImpl)
	s.now = func() time.Time { return testNow }
	return s
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetSeriesValidatesBeforeQuery(t *testing.T) {
	repo := &fakeStatRepo{}
	s := newTestService(repo, cache.NewMemory())
	ctx := context.Background()

	cases := []struct {
		name      string
		brandID   uint64
		platform  string
		timeRange string
		metric    string
		wantErr   error
	}{
		{"无品牌", 0, "all", "7days", "views", UnauthorizedError},
		{"未知时间范围", 1, "all", "14days", "views", ErrTimeRangeInvalid},
		{"未知指标", 1, "all", "7days", "impressions", ErrMetricInvalid},
		{"未知平台", 1, "twitter", "7days", "views", ErrPlatformInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.GetSeries(ctx, tc.brandID, tc.platform, tc.timeRange, tc.metric)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
	if repo.queryCalls != 0 {
		t.Fatalf("校验失败时不应查库, queryCalls = %d", repo.queryCalls)
	}
}

func TestGetSeriesZeroFillAndShape(t *testing.T) {
	repo := &fakeStatRepo{
		stats: []*model.DailyPlatformStat{
			{BrandID: 1, Platform: model.PlatformFacebook, StatDate: day(2025, 12, 21), Views: 100},
			{BrandID: 1, Platform: model.PlatformFacebook, StatDate: day(2025, 12, 23), Views: 50},
			{BrandID: 1, Platform: model.PlatformInstagram, StatDate: day(2025, 12, 23), Views: 7},
		},
	}
	s := newTestService(repo, cache.NewMemory())

	result, err := s.GetSeries(context.Background(), 1, model.PlatformAll, "7days", "views")
	if err != nil {
		t.Fatal(err)
	}
	if result["metric"] != "views" || result["timeRange"] != "7days" {
		t.Fatalf("回显字段不符: %v / %v", result["metric"], result["timeRange"])
	}
	for _, p := range model.AllPlatforms {
		if _, ok := result[p]; !ok {
			t.Fatalf("缺少平台 %s", p)
		}
	}

	type bucket struct {
		Label string `json:"label"`
		Value int64  `json:"value"`
	}
	decode := func(v interface{}) []bucket {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		var buckets []bucket
		if err = json.Unmarshal(data, &buckets); err != nil {
			t.Fatal(err)
		}
		return buckets
	}

	fb := decode(result[model.PlatformFacebook])
	if len(fb) != 7 {
		t.Fatalf("7days 应有 7 个桶, got %d", len(fb))
	}
	byLabel := make(map[string]int64, len(fb))
	for _, b := range fb {
		byLabel[b.Label] = b.Value
	}
	if byLabel["12/21"] != 100 || byLabel["12/22"] != 0 || byLabel["12/23"] != 50 {
		t.Fatalf("facebook 桶值不符: %v", byLabel)
	}

	// 平台之间互不串值
	ig := decode(result[model.PlatformInstagram])
	var igTotal int64
	for _, b := range ig {
		igTotal += b.Value
	}
	if igTotal != 7 {
		t.Fatalf("instagram 合计 = %d, want 7", igTotal)
	}
	tk := decode(result[model.PlatformTikTok])
	for _, b := range tk {
		if b.Value != 0 {
			t.Fatalf("无数据平台应全部补零: %v", tk)
		}
	}
}

func TestGetSeriesCacheHit(t *testing.T) {
	repo := &fakeStatRepo{
		stats: []*model.DailyPlatformStat{
			{BrandID: 1, Platform: model.PlatformYouTube, StatDate: day(2025, 12, 24), Likes: 9},
		},
	}
	s := newTestService(repo, cache.NewMemory())
	ctx := context.Background()

	first, err := s.GetSeries(ctx, 1, model.PlatformYouTube, "7days", "likes")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.GetSeries(ctx, 1, model.PlatformYouTube, "7days", "likes")
	if err != nil {
		t.Fatal(err)
	}
	if repo.queryCalls != 1 {
		t.Fatalf("命中缓存后不应再查库, queryCalls = %d", repo.queryCalls)
	}

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Fatalf("缓存结果与新算结果不一致:\n%s\n%s", firstJSON, secondJSON)
	}

	// 不同维度使用不同键，互不命中
	if _, err = s.GetSeries(ctx, 1, model.PlatformYouTube, "7days", "views"); err != nil {
		t.Fatal(err)
	}
	if _, err = s.GetSeries(ctx, 1, model.PlatformYouTube, "30days", "likes"); err != nil {
		t.Fatal(err)
	}
	if _, err = s.GetSeries(ctx, 2, model.PlatformYouTube, "7days", "likes"); err != nil {
		t.Fatal(err)
	}
	if repo.queryCalls != 4 {
		t.Fatalf("维度变化应各自回源, queryCalls = %d", repo.queryCalls)
	}
}

func TestGetSeriesCacheFailOpen(t *testing.T) {
	repo := &fakeStatRepo{}
	s := newTestService(repo, brokenCache{})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := s.GetSeries(ctx, 1, model.PlatformAll, "30days", "views"); err != nil {
			t.Fatalf("缓存故障不应影响请求: %v", err)
		}
	}
	if repo.queryCalls != 2 {
		t.Fatalf("缓存不可用时每次都回源, queryCalls = %d", repo.queryCalls)
	}
}

func TestGetFollowerStats(t *testing.T) {
	repo := &fakeStatRepo{
		snapshots: map[string][]*model.FollowerSnapshot{
			model.PlatformFacebook: {
				{Platform: model.PlatformFacebook, SnapshotDate: day(2025, 12, 1), Followers: 1200},
				{Platform: model.PlatformFacebook, SnapshotDate: day(2025, 11, 1), Followers: 1000},
			},
			model.PlatformInstagram: {
				{Platform: model.PlatformInstagram, SnapshotDate: day(2025, 12, 1), Followers: 300},
			},
		},
	}
	s := newTestService(repo, cache.NewMemory())

	result, err := s.GetFollowerStats(context.Background(), 1, model.PlatformAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Platforms) != len(model.AllPlatforms) {
		t.Fatalf("平台数 = %d, want %d", len(result.Platforms), len(model.AllPlatforms))
	}
	if result.Total != 1500 {
		t.Fatalf("Total = %d, want 1500", result.Total)
	}

	byPlatform := make(map[string]int, len(result.Platforms))
	for i, p := range result.Platforms {
		byPlatform[p.Platform] = i
	}

	fb := result.Platforms[byPlatform[model.PlatformFacebook]]
	if fb.Followers != 1200 || fb.Growth != 20 || fb.AsOf != "2025-12" {
		t.Fatalf("facebook = %+v", fb)
	}
	// 只有一期快照时无基准，增长为 0
	ig := result.Platforms[byPlatform[model.PlatformInstagram]]
	if ig.Followers != 300 || ig.Growth != 0 {
		t.Fatalf("instagram = %+v", ig)
	}
	// 无快照平台返回零值占位
	tk := result.Platforms[byPlatform[model.PlatformTikTok]]
	if tk.Followers != 0 || tk.Growth != 0 || tk.AsOf != "" {
		t.Fatalf("tiktok = %+v", tk)
	}
}

func TestGetOverview(t *testing.T) {
	repo := &fakeStatRepo{
		totals: map[string]*repository.StatTotals{
			"2025-12": {Views: 3000, Engagement: 150, Reach: 1000},
			"2025-11": {Views: 2000, Engagement: 80, Reach: 800},
		},
	}
	s := newTestService(repo, cache.NewMemory())

	result, err := s.GetOverview(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if result.Views.Value != 3000 || result.Views.Growth != 50 {
		t.Fatalf("views = %+v", result.Views)
	}
	// 150/1000 = 15%；上月 80/800 = 10%，环比 +50%
	if result.EngagementRate.Value != 15 || result.EngagementRate.Growth != 50 {
		t.Fatalf("engagement_rate = %+v", result.EngagementRate)
	}

	// 触达为 0 时互动率为 0 而不是 NaN
	repo2 := &fakeStatRepo{totals: map[string]*repository.StatTotals{}}
	s2 := newTestService(repo2, cache.NewMemory())
	empty, err := s2.GetOverview(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if empty.EngagementRate.Value != 0 || empty.Views.Growth != 0 {
		t.Fatalf("空数据概览应全零: %+v", empty)
	}
}
