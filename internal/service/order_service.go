package service

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/model"
	"Bonjour/internal/repository"
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

type OrderService interface {
	CreateOrder(ctx context.Context, brandID uint64, orderDTO *dto.OrderCreateDTO) (*model.Order, error)
	GetOrder(ctx context.Context, brandID, id uint64) (*model.Order, error)
	ListOrders(ctx context.Context, brandID uint64, listDTO *dto.OrderListDTO) ([]*model.Order, error)
	UpdateOrderStatus(ctx context.Context, brandID, id uint64, status string) (*model.Order, error)
}

type OrderServiceImpl struct {
	orderRepo repository.OrderRepo
}

func NewOrderService(orderRepo repository.OrderRepo) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo}
}

func (s *OrderServiceImpl) CreateOrder(ctx context.Context, brandID uint64, orderDTO *dto.OrderCreateDTO) (*model.Order, error) {
	// 订单编号品牌内唯一，先查重给出明确错误而不是裸唯一键冲突
	existing, err := s.orderRepo.GetOrderByCode(ctx, brandID, orderDTO.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrOrderCodeExist
	}

	order := &model.Order{}
	if err = copier.Copy(order, orderDTO); err != nil {
		return nil, err
	}
	order.BrandID = brandID

	if err = s.orderRepo.CreateOrder(ctx, order); err != nil {
		// 并发创建时查重可能漏判，唯一键冲突兜底
		if isDuplicateKeyError(err) {
			return nil, ErrOrderCodeExist
		}
		return nil, err
	}
	return order, nil
}

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, brandID, id uint64) (*model.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context, brandID uint64, listDTO *dto.OrderListDTO) ([]*model.Order, error) {
	return s.orderRepo.ListOrders(ctx, brandID, repository.OrderFilter{
		Status:  listDTO.Status,
		Channel: listDTO.Channel,
	})
}

func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, brandID, id uint64, status string) (*model.Order, error) {
	order, err := s.GetOrder(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	if err = s.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
