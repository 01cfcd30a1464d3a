package dto

import "time"

// PostBaseDTO 创建/更新帖子共用的请求体
type PostBaseDTO struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Content     string     `json:"content" binding:"required"`
	Status      string     `json:"status" binding:"omitempty,oneof=DRAFT SCHEDULED PUBLISHED"`
	Tags        string     `json:"tags"`
	Media       string     `json:"media"`
	Platforms   string     `json:"platforms"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// PostListDTO 帖子列表查询参数
type PostListDTO struct {
	Status string `form:"status" binding:"omitempty,oneof=DRAFT SCHEDULED PUBLISHED"`
	Tag    string `form:"tag"`
}
