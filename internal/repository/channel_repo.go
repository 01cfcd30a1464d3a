package repository

import (
	"Bonjour/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChannelRepo interface {
	ListChannels(ctx context.Context, brandID uint64) ([]*model.ChannelConnection, error)
	// SaveOrUpdateChannel Upsert 渠道连接，(brand, type) 冲突时更新状态
	SaveOrUpdateChannel(ctx context.Context, channel *model.ChannelConnection) error
}

type channelRepoImpl struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) ChannelRepo {
	return &channelRepoImpl{db: db}
}

func (r *channelRepoImpl) ListChannels(ctx context.Context, brandID uint64) ([]*model.ChannelConnection, error) {
	channels := make([]*model.ChannelConnection, 0)
	result := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("id ASC").
		Find(&channels)
	if result.Error != nil {
		return nil, result.Error
	}
	return channels, nil
}

func (r *channelRepoImpl) SaveOrUpdateChannel(ctx context.Context, channel *model.ChannelConnection) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "brand_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(channel).Error
}
