package handler

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/pkg/response"
	"Bonjour/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

func (s *AnalyticsHandler) GetSeries(c *gin.Context) {
	var query dto.SeriesQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	result, err := s.analyticsSvc.GetSeries(c.Request.Context(),
		brandID, query.Platform, query.TimeRange, query.Metric)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AnalyticsHandler) GetFollowers(c *gin.Context) {
	var query dto.FollowerQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	result, err := s.analyticsSvc.GetFollowerStats(c.Request.Context(), brandID, query.Platform)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
