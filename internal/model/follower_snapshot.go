package model

import "time"

// FollowerSnapshot 每月 1 号的粉丝数快照，用于当前值和环比增长
type FollowerSnapshot struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	BrandID      uint64    `gorm:"not null;uniqueIndex:idx_brand_platform_month" json:"brand_id"`
	Platform     string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_brand_platform_month" json:"platform"`
	SnapshotDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_brand_platform_month;column:snapshot_date" json:"snapshot_date"`
	Followers    int64     `gorm:"not null;default:0" json:"followers"`
	CreatedAt    time.Time `json:"created_at"`
}

func (FollowerSnapshot) TableName() string {
	return "follower_snapshots"
}
