package dto

// AddToCartRequest adds a product to the session cart
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// CartQuantityRequest sets the quantity of a cart line. Zero or less
// removes the line.
type CartQuantityRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}
