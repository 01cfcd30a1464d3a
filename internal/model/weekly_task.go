package model

import "time"

type WeeklyTask struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	BrandID   uint64    `gorm:"not null;index:idx_brand_id" json:"brand_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Channel   string    `gorm:"type:varchar(32)" json:"channel"`
	Completed bool      `gorm:"type:tinyint(1);not null;default:0" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WeeklyTask) TableName() string {
	return "weekly_tasks"
}
