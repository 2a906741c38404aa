package models

import "time"

// Payment is one recorded payment against a reservation
type Payment struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservationId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"` // cash | card | bank_transfer | online
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
