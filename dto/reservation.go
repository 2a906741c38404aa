package dto

// CreateReservationRequest is the front-desk reservation request
type CreateReservationRequest struct {
	GuestID         string  `json:"guestId" binding:"required"`
	RoomID          string  `json:"roomId" binding:"required"`
	CheckIn         string  `json:"checkIn" binding:"required"`
	CheckOut        string  `json:"checkOut" binding:"required"`
	TotalAmount     float64 `json:"totalAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	PaymentStatus   string  `json:"paymentStatus"`
	Guests          int     `json:"guests"`
	SpecialRequests string  `json:"specialRequests"`
}

// ReservationStatusRequest is the request to advance a reservation
type ReservationStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// BookRoomRequest is the self-service booking request
type BookRoomRequest struct {
	RoomID   string `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Guests   int    `json:"guests" binding:"required"`
}

// BookingHistoryResponse is a user's bookings plus their lifetime spend
type BookingHistoryResponse struct {
	Bookings   interface{} `json:"bookings"`
	TotalSpend float64     `json:"totalSpend"`
}

// RecordPaymentRequest records a payment against a reservation
type RecordPaymentRequest struct {
	ReservationID string  `json:"reservationId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Method        string  `json:"method"`
}
