package repository

import (
	"Bonjour/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BrandRepo interface {
	GetBrand(ctx context.Context, id uint64) (*model.Brand, error)
	UpdateBrand(ctx context.Context, brand *model.Brand) error
}

type brandRepoImpl struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepo {
	return &brandRepoImpl{db: db}
}

func (r *brandRepoImpl) GetBrand(ctx context.Context, id uint64) (*model.Brand, error) {
	var brand model.Brand
	err := r.db.WithContext(ctx).First(&brand, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepoImpl) UpdateBrand(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Updates(brand).Error
}
