package model

import "time"

type Brand struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	AvatarURL string    `gorm:"type:varchar(500)" json:"avatar_url"`
	Likes     int64     `gorm:"not null;default:0" json:"likes"`
	Followers int64     `gorm:"not null;default:0" json:"followers"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}
