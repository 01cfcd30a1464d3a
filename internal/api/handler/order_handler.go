package handler

import (
	"Bonjour/internal/api/dto"
	"Bonjour/internal/pkg/response"
	"Bonjour/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderSvc service.OrderService
}

func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

func (s *OrderHandler) CreateOrder(c *gin.Context) {
	var orderDTO dto.OrderCreateDTO
	if err := c.ShouldBind(&orderDTO); err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	order, err := s.orderSvc.CreateOrder(c.Request.Context(), brandID, &orderDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, order)
}

func (s *OrderHandler) ListOrders(c *gin.Context) {
	var listDTO dto.OrderListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	orders, err := s.orderSvc.ListOrders(c.Request.Context(), brandID, &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, orders)
}

func (s *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var statusDTO dto.OrderStatusDTO
	if err = c.ShouldBind(&statusDTO); err != nil {
		response.Error(c, err)
		return
	}

	brandID := c.GetUint64("brand_id")
	order, err := s.orderSvc.UpdateOrderStatus(c.Request.Context(), brandID, id, statusDTO.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, order)
}
