package repository

import (
	"Bonjour/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// OrderFilter 订单列表的类型化过滤条件
type OrderFilter struct {
	Status  string
	Channel string
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrder(ctx context.Context, brandID, id uint64) (*model.Order, error)
	GetOrderByCode(ctx context.Context, brandID uint64, code string) (*model.Order, error)
	ListOrders(ctx context.Context, brandID uint64, filter OrderFilter) ([]*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint64, status string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepo {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) CreateOrder(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) GetOrder(ctx context.Context, brandID, id uint64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepoImpl) GetOrderByCode(ctx context.Context, brandID uint64, code string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("brand_id = ? AND code = ?", brandID, code).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepoImpl) ListOrders(ctx context.Context, brandID uint64, filter OrderFilter) ([]*model.Order, error) {
	orders := make([]*model.Order, 0)
	tx := r.db.WithContext(ctx).Where("brand_id = ?", brandID)
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Channel != "" {
		tx = tx.Where("channel = ?", filter.Channel)
	}
	result := tx.Order("created_at DESC").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return orders, nil
}

func (r *orderRepoImpl) UpdateOrderStatus(ctx context.Context, id uint64, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
