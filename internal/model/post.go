package model

import "time"

type Post struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	BrandID     uint64     `gorm:"not null;index:idx_brand_id" json:"brand_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Status      string     `gorm:"type:varchar(16);not null;default:DRAFT;index:idx_status" json:"status"` // DRAFT / SCHEDULED / PUBLISHED
	Tags        string     `gorm:"type:varchar(500)" json:"tags"`      // 逗号分隔
	Media       string     `gorm:"type:text" json:"media"`             // 逗号分隔的对象 URL
	Platforms   string     `gorm:"type:varchar(255)" json:"platforms"` // 逗号分隔的目标平台
	ScheduledAt *time.Time `json:"scheduled_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
