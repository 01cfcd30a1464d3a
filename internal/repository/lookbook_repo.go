package repository

import (
	"Bonjour/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LookbookRepo interface {
	CreateLookbook(ctx context.Context, lookbook *model.Lookbook) error
	GetLookbook(ctx context.Context, brandID, id uint64) (*model.Lookbook, error)
	ListLookbooks(ctx context.Context, brandID uint64) ([]*model.Lookbook, error)
	UpdateLookbook(ctx context.Context, lookbook *model.Lookbook) error
	DeleteLookbook(ctx context.Context, brandID, id uint64) error
}

type lookbookRepoImpl struct {
	db *gorm.DB
}

func NewLookbookRepository(db *gorm.DB) LookbookRepo {
	return &lookbookRepoImpl{db: db}
}

func (r *lookbookRepoImpl) CreateLookbook(ctx context.Context, lookbook *model.Lookbook) error {
	return r.db.WithContext(ctx).Create(lookbook).Error
}

func (r *lookbookRepoImpl) GetLookbook(ctx context.Context, brandID, id uint64) (*model.Lookbook, error) {
	var lookbook model.Lookbook
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&lookbook, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lookbook, nil
}

func (r *lookbookRepoImpl) ListLookbooks(ctx context.Context, brandID uint64) ([]*model.Lookbook, error) {
	lookbooks := make([]*model.Lookbook, 0)
	result := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("updated_at DESC").
		Find(&lookbooks)
	if result.Error != nil {
		return nil, result.Error
	}
	return lookbooks, nil
}

func (r *lookbookRepoImpl) UpdateLookbook(ctx context.Context, lookbook *model.Lookbook) error {
	return r.db.WithContext(ctx).
		Select("name", "description", "link", "image_url", "banner_url", "images_url").
		Updates(lookbook).Error
}

func (r *lookbookRepoImpl) DeleteLookbook(ctx context.Context, brandID, id uint64) error {
	return r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Delete(&model.Lookbook{}, id).Error
}
