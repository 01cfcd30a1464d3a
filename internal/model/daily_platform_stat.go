package model

import "time"

// DailyPlatformStat 按 (品牌, 平台, 自然日) 记录的每日计数。
// 复合唯一索引防止重复行导致聚合重复计数。
type DailyPlatformStat struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	BrandID    uint64    `gorm:"not null;uniqueIndex:idx_brand_platform_date" json:"brand_id"`
	Platform   string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_brand_platform_date" json:"platform"`
	StatDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_brand_platform_date;column:stat_date" json:"stat_date"`
	Views      int64     `gorm:"not null;default:0" json:"views"`
	Likes      int64     `gorm:"not null;default:0" json:"likes"`
	Comments   int64     `gorm:"not null;default:0" json:"comments"`
	Shares     int64     `gorm:"not null;default:0" json:"shares"`
	Follows    int64     `gorm:"not null;default:0" json:"follows"`
	Engagement int64     `gorm:"not null;default:0" json:"engagement"`
	Reach      int64     `gorm:"not null;default:0" json:"reach"`
	CreatedAt  time.Time `json:"created_at"`
}

func (DailyPlatformStat) TableName() string {
	return "daily_platform_stats"
}

// MetricNames 可聚合的指标名
var MetricNames = []string{"views", "likes", "comments", "shares", "follows", "engagement", "reach"}

// IsValidMetric 判断是否为已知指标名
func IsValidMetric(name string) bool {
	for _, m := range MetricNames {
		if m == name {
			return true
		}
	}
	return false
}

// MetricValue 按指标名取值，未知指标返回 0（调用方必须先校验）
func (s *DailyPlatformStat) MetricValue(name string) int64 {
	switch name {
	case "views":
		return s.Views
	case "likes":
		return s.Likes
	case "comments":
		return s.Comments
	case "shares":
		return s.Shares
	case "follows":
		return s.Follows
	case "engagement":
		return s.Engagement
	case "reach":
		return s.Reach
	}
	return 0
}
