package dto

// OrderCreateDTO 创建订单请求
type OrderCreateDTO struct {
	Code         string `json:"code" binding:"required,max=64"`
	CustomerName string `json:"customer_name" binding:"required,max=255"`
	Channel      string `json:"channel" binding:"required,oneof=facebook instagram threads tiktok youtube"`
	TotalAmount  int64  `json:"total_amount" binding:"gte=0"`
}

// OrderStatusDTO 更新订单状态请求
type OrderStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED SHIPPED COMPLETED CANCELLED"`
}

// OrderListDTO 订单列表查询参数
type OrderListDTO struct {
	Status  string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED SHIPPED COMPLETED CANCELLED"`
	Channel string `form:"channel" binding:"omitempty,oneof=facebook instagram threads tiktok youtube"`
}
