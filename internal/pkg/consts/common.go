package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

// 帖子状态
const (
	PostStatusDraft     = "DRAFT"
	PostStatusScheduled = "SCHEDULED"
	PostStatusPublished = "PUBLISHED"
)

// 订单状态
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// 渠道连接状态
const (
	ChannelConnected    = "connected"
	ChannelDisconnected = "disconnected"
)
