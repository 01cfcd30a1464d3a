package model

import "time"

type ChannelConnection struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	BrandID   uint64    `gorm:"not null;uniqueIndex:idx_brand_type" json:"brand_id"`
	Type      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_brand_type" json:"type"`
	Status    string    `gorm:"type:varchar(16);not null;default:disconnected" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ChannelConnection) TableName() string {
	return "channel_connections"
}
