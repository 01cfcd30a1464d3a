package handler

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/pkg/response"
	"Bonjour/internal/service"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelSvc service.ChannelService
}

func NewChannelHandler(channelSvc service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelSvc: channelSvc}
}

func (s *ChannelHandler) ListChannels(c *gin.Context) {
	brandID := c.GetUint64("brand_id")
	channels, err := s.channelSvc.ListChannels(c.Request.Context(), brandID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channels)
}

func (s *ChannelHandler) UpdateChannel(c *gin.Context) {
	var updateDTO dto.ChannelUpdateDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	channel, err := s.channelSvc.UpdateChannel(c.Request.Context(), brandID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channel)
}
