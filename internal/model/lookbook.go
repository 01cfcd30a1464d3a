package model

import "time"

type Lookbook struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	BrandID     uint64    `gorm:"not null;index:idx_brand_id" json:"brand_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Link        string    `gorm:"type:varchar(500)" json:"link"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`
	BannerURL   string    `gorm:"type:varchar(500)" json:"banner_url"`
	ImagesURL   string    `gorm:"type:text" json:"images_url"` // 逗号分隔的画册图片

	// 画册维度的浏览统计
	TotalViewers     int64 `gorm:"not null;default:0" json:"total_viewers"`
	FacebookViews    int64 `gorm:"not null;default:0" json:"facebook_views"`
	ThreadsViews     int64 `gorm:"not null;default:0" json:"threads_views"`
	InstagramViews   int64 `gorm:"not null;default:0" json:"instagram_views"`
	NewCustomerReach int64 `gorm:"not null;default:0" json:"new_customer_reach"`
	PostViews        int64 `gorm:"not null;default:0" json:"post_views"`
	PageVisits       int64 `gorm:"not null;default:0" json:"page_visits"`
	ContentScore     int64 `gorm:"not null;default:0" json:"content_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Lookbook) TableName() string {
	return "lookbooks"
}
