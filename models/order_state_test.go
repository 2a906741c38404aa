package models

import (
	"testing"

	"stayhub/constants"
)

func TestOrderHappyPath(t *testing.T) {
	order := &Order{Status: constants.OrderStatusPending}

	if err := GetOrderState(order.Status).Process(order); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if order.Status != constants.OrderStatusProcessing {
		t.Fatalf("status = %q, want %q", order.Status, constants.OrderStatusProcessing)
	}

	if err := GetOrderState(order.Status).Ship(order); err != nil {
		t.Fatalf("Ship: %v", err)
	}
	if order.Status != constants.OrderStatusShipped {
		t.Fatalf("status = %q, want %q", order.Status, constants.OrderStatusShipped)
	}

	if err := GetOrderState(order.Status).Deliver(order); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if order.Status != constants.OrderStatusDelivered {
		t.Fatalf("status = %q, want %q", order.Status, constants.OrderStatusDelivered)
	}
}

func TestOrderCannotSkipAhead(t *testing.T) {
	order := &Order{Status: constants.OrderStatusPending}
	state := GetOrderState(order.Status)

	if err := state.Ship(order); err == nil {
		t.Fatal("expected error shipping a pending order")
	}
	if err := state.Deliver(order); err == nil {
		t.Fatal("expected error delivering a pending order")
	}
}

func TestOrderCancelWindow(t *testing.T) {
	// Cancelable until shipped.
	for _, status := range []string{constants.OrderStatusPending, constants.OrderStatusProcessing} {
		order := &Order{Status: status}
		if err := GetOrderState(status).Cancel(order); err != nil {
			t.Errorf("%s: Cancel: %v", status, err)
		}
		if order.Status != constants.OrderStatusCanceled {
			t.Errorf("%s: status = %q, want %q", status, order.Status, constants.OrderStatusCanceled)
		}
	}

	for _, status := range []string{constants.OrderStatusShipped, constants.OrderStatusDelivered, constants.OrderStatusCanceled} {
		order := &Order{Status: status}
		if err := GetOrderState(status).Cancel(order); err == nil {
			t.Errorf("%s: expected Cancel to fail", status)
		}
	}
}
