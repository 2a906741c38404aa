package services

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
)

// OrderService holds grocery orders in memory
type OrderService struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID int
}

// NewOrderService creates an empty order store
func NewOrderService() *OrderService {
	return &OrderService{nextID: 1}
}

// Create places an order from a cart. The cart must not be empty.
func (s *OrderService) Create(userID uint, cart models.Cart, address models.ShippingAddress, paymentMethod string) (models.Order, error) {
	if len(cart.Items) == 0 {
		return models.Order{}, errors.NewAppError(errors.ErrCodeEmptyCart, "cannot place an order from an empty cart", errors.ErrEmptyCart)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	order := models.Order{
		ID:              strconv.Itoa(s.nextID),
		UserID:          userID,
		Items:           append([]models.CartItem(nil), cart.Items...),
		Total:           cart.Total,
		Status:          constants.OrderStatusPending,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.nextID++
	s.orders = append(s.orders, order)
	return order, nil
}

// GetByID returns the order with the given id
func (s *OrderService) GetByID(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("order %s not found", id), errors.ErrOrderNotFound)
}

// UserOrders returns the orders placed by userID, in insertion order
func (s *OrderService) UserOrders(userID uint) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// All returns every order
func (s *OrderService) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// UpdateStatus advances an order through its lifecycle
func (s *OrderService) UpdateStatus(id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("order %s not found", id), errors.ErrOrderNotFound)
	}

	order := &s.orders[idx]
	state := models.GetOrderState(order.Status)

	var err error
	switch status {
	case constants.OrderStatusProcessing:
		err = state.Process(order)
	case constants.OrderStatusShipped:
		err = state.Ship(order)
	case constants.OrderStatusDelivered:
		err = state.Deliver(order)
	case constants.OrderStatusCanceled:
		err = state.Cancel(order)
	default:
		return errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("invalid order status: %q", status), nil)
	}
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), nil)
	}

	order.UpdatedAt = time.Now()
	return nil
}
