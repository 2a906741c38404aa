package builders

import (
	"stayhub/models"
)

// ReservationBuilder assembles a reservation step by step
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder creates a new ReservationBuilder
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{},
	}
}

// WithGuest sets the front-desk guest
func (b *ReservationBuilder) WithGuest(guestID string) *ReservationBuilder {
	b.reservation.GuestID = guestID
	return b
}

// WithUser sets the self-service account holder
func (b *ReservationBuilder) WithUser(userID uint) *ReservationBuilder {
	b.reservation.UserID = &userID
	return b
}

// WithRoom sets the room
func (b *ReservationBuilder) WithRoom(roomID string) *ReservationBuilder {
	b.reservation.RoomID = roomID
	return b
}

// WithStay sets the stay interval
func (b *ReservationBuilder) WithStay(checkIn, checkOut string) *ReservationBuilder {
	b.reservation.CheckIn = checkIn
	b.reservation.CheckOut = checkOut
	return b
}

// WithGuests sets the party size
func (b *ReservationBuilder) WithGuests(guests int) *ReservationBuilder {
	b.reservation.Guests = guests
	return b
}

// WithAmounts sets the total and paid amounts
func (b *ReservationBuilder) WithAmounts(total, paid float64) *ReservationBuilder {
	b.reservation.TotalAmount = total
	b.reservation.PaidAmount = paid
	return b
}

// WithPaymentStatus sets the payment status
func (b *ReservationBuilder) WithPaymentStatus(status string) *ReservationBuilder {
	b.reservation.PaymentStatus = status
	return b
}

// WithSpecialRequests sets the free-text special requests
func (b *ReservationBuilder) WithSpecialRequests(requests string) *ReservationBuilder {
	b.reservation.SpecialRequests = requests
	return b
}

// Build returns the assembled reservation
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
