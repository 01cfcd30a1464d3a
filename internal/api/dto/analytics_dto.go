package dto

// SeriesQueryDTO 聚合序列查询参数
type SeriesQueryDTO struct {
	Platform  string `form:"platform,default=all"`
	TimeRange string `form:"timeRange,default=7days"`
	Metric    string `form:"metric,default=views"`
}

// FollowerQueryDTO 粉丝统计查询参数
type FollowerQueryDTO struct {
	Platform string `form:"platform,default=all"`
}

// FollowerPlatformDTO 单个平台的粉丝现状与月环比
type FollowerPlatformDTO struct {
	Platform  string  `json:"platform"`
	Followers int64   `json:"followers"`
	Growth    float64 `json:"growth"`
	AsOf      string  `json:"as_of"` // 快照月份，如 2025-12
}

// FollowerStatsDTO 粉丝统计响应
type FollowerStatsDTO struct {
	Platforms []*FollowerPlatformDTO `json:"platforms"`
	Total     int64                  `json:"total"`
}

// KpiDTO 单项 KPI：当前周期值 + 环比增长（%）
type KpiDTO struct {
	Value  float64 `json:"value"`
	Growth float64 `json:"growth"`
}

// OverviewDTO 概览看板：当月合计与上月环比
type OverviewDTO struct {
	Reach          *KpiDTO `json:"reach"`
	Views          *KpiDTO `json:"views"`
	Engagement     *KpiDTO `json:"engagement"`
	EngagementRate *KpiDTO `json:"engagement_rate"`
}
