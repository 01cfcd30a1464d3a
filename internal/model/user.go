package model

import "time"

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	BrandID   uint64    `gorm:"not null;index:idx_brand_id" json:"brand_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_email" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(32);not null;default:admin" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Brand Brand `gorm:"foreignKey:BrandID;references:ID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
