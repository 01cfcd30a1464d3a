package service

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/model"
	"Bonjour/internal/pkg/consts"
	"Bonjour/internal/repository"
	"context"
)

type ChannelService interface {
	// ListChannels 返回全部已知平台的连接状态，未记录的平台补 disconnected 占位
	ListChannels(ctx context.Context, brandID uint64) ([]*model.ChannelConnection, error)
	UpdateChannel(ctx context.Context, brandID uint64, updateDTO *dto.ChannelUpdateDTO) (*model.ChannelConnection, error)
}

type ChannelServiceImpl struct {
	channelRepo repository.ChannelRepo
}

func NewChannelService(channelRepo repository.ChannelRepo) ChannelService {
	return &ChannelServiceImpl{channelRepo: channelRepo}
}

func (s *ChannelServiceImpl) ListChannels(ctx context.Context, brandID uint64) ([]*model.ChannelConnection, error) {
	channels, err := s.channelRepo.ListChannels(ctx, brandID)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*model.ChannelConnection, len(channels))
	for _, ch := range channels {
		byType[ch.Type] = ch
	}

	result := make([]*model.ChannelConnection, 0, len(model.AllPlatforms))
	for _, p := range model.AllPlatforms {
		if ch, ok := byType[p]; ok {
			result = append(result, ch)
			continue
		}
		result = append(result, &model.ChannelConnection{
			BrandID: brandID,
			Type:    p,
			Status:  consts.ChannelDisconnected,
		})
	}
	return result, nil
}

func (s *ChannelServiceImpl) UpdateChannel(ctx context.Context, brandID uint64, updateDTO *dto.ChannelUpdateDTO) (*model.ChannelConnection, error) {
	channel := &model.ChannelConnection{
		BrandID: brandID,
		Type:    updateDTO.Type,
		Status:  updateDTO.Status,
	}
	if err := s.channelRepo.SaveOrUpdateChannel(ctx, channel); err != nil {
		return nil, err
	}
	return channel, nil
}
