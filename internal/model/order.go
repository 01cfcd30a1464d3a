package model

import "time"

type Order struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	BrandID      uint64    `gorm:"not null;uniqueIndex:idx_brand_code" json:"brand_id"`
	Code         string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_brand_code" json:"code"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Channel      string    `gorm:"type:varchar(32);not null" json:"channel"` // 来源平台
	TotalAmount  int64     `gorm:"not null;default:0" json:"total_amount"`   // 单位：分
	Status       string    `gorm:"type:varchar(16);not null;default:PENDING;index:idx_status" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
