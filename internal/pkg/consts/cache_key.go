package consts

// 响应缓存键前缀，键体格式见 analytics_service
const (
	AnalyticsSeriesKey   = "analytics:series"
	AnalyticsFollowerKey = "analytics:followers"
	AnalyticsOverviewKey = "analytics:overview"
)

// Redis 键前缀
const (
	TokenDenyKey = "auth:token:deny:"
)
