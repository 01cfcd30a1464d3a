package api

import (
	"Bonjour/internal/api/middleware"
	"Bonjour/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
				loggedGroup.GET("/me", group.AuthHandler.GetMe)
			}
		}

		dashboardGroup := apiGroup.Group("/dashboard")
		dashboardGroup.Use(middleware.AuthMiddleware())
		{
			dashboardGroup.GET("/overview", group.DashboardHandler.GetOverview)
			dashboardGroup.GET("/weekly-plan", group.DashboardHandler.GetWeeklyPlan)
			dashboardGroup.PATCH("/weekly-plan/:task_id", group.DashboardHandler.ToggleWeeklyTask)
			dashboardGroup.GET("/channels", group.ChannelHandler.ListChannels)
		}

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.Use(middleware.AuthMiddleware())
		{
			analyticsGroup.GET("/series", group.AnalyticsHandler.GetSeries)
			analyticsGroup.GET("/followers", group.AnalyticsHandler.GetFollowers)
		}

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(middleware.AuthMiddleware())
		{
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/tags", group.PostHandler.ListTags)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
			postGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
		}

		lookbookGroup := apiGroup.Group("/lookbooks")
		lookbookGroup.Use(middleware.AuthMiddleware())
		{
			lookbookGroup.POST("", group.LookbookHandler.CreateLookbook)
			lookbookGroup.GET("", group.LookbookHandler.ListLookbooks)
			lookbookGroup.GET("/:lookbook_id", group.LookbookHandler.GetLookbook)
			lookbookGroup.PUT("/:lookbook_id", group.LookbookHandler.UpdateLookbook)
			lookbookGroup.DELETE("/:lookbook_id", group.LookbookHandler.DeleteLookbook)
		}

		orderGroup := apiGroup.Group("/orders")
		orderGroup.Use(middleware.AuthMiddleware())
		{
			orderGroup.POST("", group.OrderHandler.CreateOrder)
			orderGroup.GET("", group.OrderHandler.ListOrders)
			orderGroup.PUT("/:order_id/status", group.OrderHandler.UpdateOrderStatus)
		}

		channelGroup := apiGroup.Group("/channels")
		channelGroup.Use(middleware.AuthMiddleware())
		{
			channelGroup.PUT("", group.ChannelHandler.UpdateChannel)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
