package api

import "Bonjour/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler      *handler.AuthHandler
	AnalyticsHandler *handler.AnalyticsHandler
	DashboardHandler *handler.DashboardHandler
	PostHandler      *handler.PostHandler
	LookbookHandler  *handler.LookbookHandler
	OrderHandler     *handler.OrderHandler
	ChannelHandler   *handler.ChannelHandler
	MediaHandler     *handler.MediaHandler
}
