package controllers

import (
	"context"
	"log"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles grocery orders placed from the cart
type OrderController struct {
	orders *services.OrderService
	carts  *services.CartService
}

// NewOrderController creates an OrderController
func NewOrderController(orders *services.OrderService, carts *services.CartService) *OrderController {
	return &OrderController{orders: orders, carts: carts}
}

func (ctl *OrderController) CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	ctx := context.Background()
	cart, err := ctl.carts.GetCart(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := ctl.orders.Create(userID, cart, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctl.carts.ClearCart(ctx, userID); err != nil {
		log.Printf("Failed to clear cart for user %d after order %s: %v", userID, order.ID, err)
	}

	response.Success(c, order)
}

func (ctl *OrderController) GetOrderByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	order, err := ctl.orders.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	role, _ := currentUserRole(c)
	if order.UserID != userID && role != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	response.Success(c, order)
}

func (ctl *OrderController) GetOrderHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	orders := ctl.orders.UserOrders(userID)
	response.SuccessWithTotal(c, orders, len(orders))
}

func (ctl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := pageParams(c)
	orders := ctl.orders.All()
	response.SuccessWithPagination(c, paginate(orders, page, limit), page, limit, len(orders))
}

func (ctl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := ctl.orders.UpdateStatus(req.ID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	order, err := ctl.orders.GetByID(req.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, order)
}
