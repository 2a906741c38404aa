package models

import (
	"errors"

	"stayhub/constants"
)

// OrderState defines the interface for grocery order states
type OrderState interface {
	Process(order *Order) error
	Ship(order *Order) error
	Deliver(order *Order) error
	Cancel(order *Order) error
}

// PendingOrderState is an order waiting to be processed
type PendingOrderState struct{}

func (s *PendingOrderState) Process(order *Order) error {
	order.Status = constants.OrderStatusProcessing
	return nil
}

func (s *PendingOrderState) Ship(order *Order) error {
	return errors.New("cannot ship a pending order")
}

func (s *PendingOrderState) Deliver(order *Order) error {
	return errors.New("cannot deliver a pending order")
}

func (s *PendingOrderState) Cancel(order *Order) error {
	order.Status = constants.OrderStatusCanceled
	return nil
}

// ProcessingOrderState is an order being prepared
type ProcessingOrderState struct{}

func (s *ProcessingOrderState) Process(order *Order) error {
	return errors.New("order already processing")
}

func (s *ProcessingOrderState) Ship(order *Order) error {
	order.Status = constants.OrderStatusShipped
	return nil
}

func (s *ProcessingOrderState) Deliver(order *Order) error {
	return errors.New("cannot deliver an unshipped order")
}

func (s *ProcessingOrderState) Cancel(order *Order) error {
	order.Status = constants.OrderStatusCanceled
	return nil
}

// ShippedOrderState is an order on the way
type ShippedOrderState struct{}

func (s *ShippedOrderState) Process(order *Order) error {
	return errors.New("order already shipped")
}

func (s *ShippedOrderState) Ship(order *Order) error {
	return errors.New("order already shipped")
}

func (s *ShippedOrderState) Deliver(order *Order) error {
	order.Status = constants.OrderStatusDelivered
	return nil
}

func (s *ShippedOrderState) Cancel(order *Order) error {
	return errors.New("cannot cancel a shipped order")
}

// DeliveredOrderState is a completed order
type DeliveredOrderState struct{}

func (s *DeliveredOrderState) Process(order *Order) error {
	return errors.New("order already delivered")
}

func (s *DeliveredOrderState) Ship(order *Order) error {
	return errors.New("order already delivered")
}

func (s *DeliveredOrderState) Deliver(order *Order) error {
	return errors.New("order already delivered")
}

func (s *DeliveredOrderState) Cancel(order *Order) error {
	return errors.New("cannot cancel a delivered order")
}

// CanceledOrderState is a canceled order
type CanceledOrderState struct{}

func (s *CanceledOrderState) Process(order *Order) error {
	return errors.New("cannot process a canceled order")
}

func (s *CanceledOrderState) Ship(order *Order) error {
	return errors.New("cannot ship a canceled order")
}

func (s *CanceledOrderState) Deliver(order *Order) error {
	return errors.New("cannot deliver a canceled order")
}

func (s *CanceledOrderState) Cancel(order *Order) error {
	return errors.New("order already canceled")
}

// GetOrderState returns the state matching the order status
func GetOrderState(status string) OrderState {
	switch status {
	case constants.OrderStatusPending:
		return &PendingOrderState{}
	case constants.OrderStatusProcessing:
		return &ProcessingOrderState{}
	case constants.OrderStatusShipped:
		return &ShippedOrderState{}
	case constants.OrderStatusDelivered:
		return &DeliveredOrderState{}
	case constants.OrderStatusCanceled:
		return &CanceledOrderState{}
	default:
		return &PendingOrderState{}
	}
}
