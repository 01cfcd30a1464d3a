package dto

// ChannelUpdateDTO 渠道连接状态变更请求
type ChannelUpdateDTO struct {
	Type   string `json:"type" binding:"required,oneof=facebook instagram threads tiktok youtube"`
	Status string `json:"status" binding:"required,oneof=connected disconnected"`
}
