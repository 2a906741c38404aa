package services

import (
	"context"
	"fmt"

	"stayhub/models"

	"github.com/redis/go-redis/v9"
)

// Carts persist across sessions as JSON blobs under a fixed key name per
// account, mirroring the storefront's local-storage cart.
const cartKeyPrefix = "cart:"

func cartKey(userID uint) string {
	return fmt.Sprintf("%s%d", cartKeyPrefix, userID)
}

// CartService keeps the per-user cart in Redis
type CartService struct {
	rdb *redis.Client
}

// NewCartService creates a CartService over the given client
func NewCartService(rdb *redis.Client) *CartService {
	return &CartService{rdb: rdb}
}

// GetCart loads the user's cart; an absent cart is empty, not an error
func (s *CartService) GetCart(ctx context.Context, userID uint) (models.Cart, error) {
	cart := models.Cart{Items: []models.CartItem{}}
	if err := GetFromRedis(ctx, s.rdb, cartKey(userID), &cart); err != nil {
		return models.Cart{}, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

func (s *CartService) saveCart(ctx context.Context, userID uint, cart models.Cart) error {
	return SetToRedis(ctx, s.rdb, cartKey(userID), cart, 0)
}

// AddItem adds a product line, merging quantities for a repeated product
func (s *CartService) AddItem(ctx context.Context, userID uint, product models.Product, quantity int) (models.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ID == product.ID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: quantity,
		})
	}

	cart.RecalculateTotal()
	if err := s.saveCart(ctx, userID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// RemoveItem drops a product line from the cart
func (s *CartService) RemoveItem(ctx context.Context, userID uint, productID string) (models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items

	cart.RecalculateTotal()
	if err := s.saveCart(ctx, userID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// UpdateQuantity sets the quantity of a line; zero or less removes it
func (s *CartService) UpdateQuantity(ctx context.Context, userID uint, productID string, quantity int) (models.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	for i := range cart.Items {
		if cart.Items[i].ID == productID {
			cart.Items[i].Quantity = quantity
			break
		}
	}

	cart.RecalculateTotal()
	if err := s.saveCart(ctx, userID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// ClearCart empties the user's cart
func (s *CartService) ClearCart(ctx context.Context, userID uint) error {
	return DeleteFromRedis(ctx, s.rdb, cartKey(userID))
}
