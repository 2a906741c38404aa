package models

import "time"

// Reservation links a guest (or a self-service account) to a room over a
// half-open [CheckIn, CheckOut) date range. Front-desk reservations carry a
// GuestID; self-service bookings carry a UserID. Both move through the same
// status lifecycle.
type Reservation struct {
	ID              string    `json:"id"`
	GuestID         string    `json:"guestId,omitempty"`
	UserID          *uint     `json:"userId,omitempty"`
	RoomID          string    `json:"roomId"`
	RoomName        string    `json:"roomName,omitempty"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	Status          string    `json:"status"`
	TotalAmount     float64   `json:"totalAmount"`
	PaidAmount      float64   `json:"paidAmount"`
	PaymentStatus   string    `json:"paymentStatus"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
