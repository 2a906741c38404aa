package controllers

import (
	"context"

	"stayhub/dto"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// CartController handles the per-user grocery cart
type CartController struct {
	carts    *services.CartService
	products *services.ProductService
}

// NewCartController creates a CartController
func NewCartController(carts *services.CartService, products *services.ProductService) *CartController {
	return &CartController{carts: carts, products: products}
}

func (ctl *CartController) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	cart, err := ctl.carts.GetCart(context.Background(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, cart)
}

func (ctl *CartController) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	product, err := ctl.products.GetByID(req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	cart, err := ctl.carts.AddItem(context.Background(), userID, product, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, cart)
}

func (ctl *CartController) UpdateCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	cart, err := ctl.carts.UpdateQuantity(context.Background(), userID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, cart)
}

func (ctl *CartController) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	cart, err := ctl.carts.RemoveItem(context.Background(), userID, c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, cart)
}

func (ctl *CartController) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := ctl.carts.ClearCart(context.Background(), userID); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
