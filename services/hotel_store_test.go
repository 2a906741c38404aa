package services

import (
	"testing"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
)

func newTestStore(t *testing.T) (*HotelStore, models.Guest, models.Room) {
	t.Helper()

	store := NewHotelStore(HotelStoreOptions{})
	guest := store.AddGuest(models.Guest{FirstName: "John", LastName: "Smith"})
	room, err := store.AddRoom(models.Room{
		ID:     "101",
		Number: "101",
		Name:   "Standard Room",
		Type:   constants.RoomTypeStandard,
		Price:  120,
	})
	if err != nil {
		t.Fatalf("AddRoom: %v", err)
	}
	return store, guest, room
}

func makeReservation(guestID, roomID, checkIn, checkOut string) models.Reservation {
	return models.Reservation{
		GuestID:     guestID,
		RoomID:      roomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: 240,
		PaidAmount:  120,
		Guests:      2,
	}
}

func TestAddReservationMarksRoomOccupied(t *testing.T) {
	store, guest, room := newTestStore(t)

	res, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-12"))
	if err != nil {
		t.Fatalf("AddReservation: %v", err)
	}
	if res.ID == "" {
		t.Fatal("expected a generated reservation id")
	}
	if res.Status != constants.ReservationStatusConfirmed {
		t.Fatalf("status = %q, want %q", res.Status, constants.ReservationStatusConfirmed)
	}
	if res.RoomName != room.Name {
		t.Fatalf("room name = %q, want %q", res.RoomName, room.Name)
	}

	got, err := store.GetRoomByID(room.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if got.Status != constants.RoomStatusOccupied {
		t.Fatalf("room status = %q, want %q", got.Status, constants.RoomStatusOccupied)
	}
}

func TestAddReservationRejectsInvalidRange(t *testing.T) {
	store, guest, room := newTestStore(t)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"equal dates", "2026-09-10", "2026-09-10"},
		{"reversed dates", "2026-09-12", "2026-09-10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.AddReservation(makeReservation(guest.ID, room.ID, tc.checkIn, tc.checkOut))
			if errors.CodeOf(err) != errors.ErrCodeInvalidRange {
				t.Fatalf("error code = %q, want %q (err: %v)", errors.CodeOf(err), errors.ErrCodeInvalidRange, err)
			}
		})
	}
}

func TestAddReservationRejectsOverpayment(t *testing.T) {
	store, guest, room := newTestStore(t)

	res := makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-12")
	res.TotalAmount = 100
	res.PaidAmount = 150

	_, err := store.AddReservation(res)
	if errors.CodeOf(err) != errors.ErrCodeOverpayment {
		t.Fatalf("error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeOverpayment)
	}
}

func TestAddReservationRejectsUnknownGuestAndRoom(t *testing.T) {
	store, guest, room := newTestStore(t)

	_, err := store.AddReservation(makeReservation("missing", room.ID, "2026-09-10", "2026-09-12"))
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Fatalf("unknown guest: error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeNotFound)
	}

	_, err = store.AddReservation(makeReservation(guest.ID, "999", "2026-09-10", "2026-09-12"))
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Fatalf("unknown room: error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestAddReservationRejectsOverlap(t *testing.T) {
	store, guest, room := newTestStore(t)

	if _, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-15")); err != nil {
		t.Fatalf("first reservation: %v", err)
	}

	overlapping := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"inside", "2026-09-11", "2026-09-13"},
		{"straddles start", "2026-09-08", "2026-09-11"},
		{"straddles end", "2026-09-14", "2026-09-18"},
		{"covers", "2026-09-08", "2026-09-18"},
	}
	for _, tc := range overlapping {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.AddReservation(makeReservation(guest.ID, room.ID, tc.checkIn, tc.checkOut))
			if errors.CodeOf(err) != errors.ErrCodeOverlap {
				t.Fatalf("error code = %q, want %q (err: %v)", errors.CodeOf(err), errors.ErrCodeOverlap, err)
			}
		})
	}
}

func TestAddReservationAllowsBackToBackStays(t *testing.T) {
	store, guest, room := newTestStore(t)

	if _, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-12")); err != nil {
		t.Fatalf("first reservation: %v", err)
	}
	// Check-out day equals the next check-in day; half-open ranges do
	// not intersect.
	if _, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-12", "2026-09-14")); err != nil {
		t.Fatalf("back-to-back reservation: %v", err)
	}
}

func TestCancelledReservationFreesTheDates(t *testing.T) {
	store, guest, room := newTestStore(t)

	first, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-15"))
	if err != nil {
		t.Fatalf("first reservation: %v", err)
	}
	if err := store.UpdateReservationStatus(first.ID, constants.ReservationStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-11", "2026-09-13")); err != nil {
		t.Fatalf("reservation over cancelled dates: %v", err)
	}
}

func TestCheckOutFlipsRoomToCleaning(t *testing.T) {
	store, guest, room := newTestStore(t)

	res, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-12"))
	if err != nil {
		t.Fatalf("AddReservation: %v", err)
	}
	if err := store.UpdateReservationStatus(res.ID, constants.ReservationStatusCheckedIn); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if err := store.UpdateReservationStatus(res.ID, constants.ReservationStatusCheckedOut); err != nil {
		t.Fatalf("check out: %v", err)
	}

	got, err := store.GetRoomByID(room.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if got.Status != constants.RoomStatusCleaning {
		t.Fatalf("room status = %q, want %q", got.Status, constants.RoomStatusCleaning)
	}
}

func TestUpdateReservationStatusRejectsInvalidTransitions(t *testing.T) {
	store, guest, room := newTestStore(t)

	res, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-12"))
	if err != nil {
		t.Fatalf("AddReservation: %v", err)
	}

	// Confirmed cannot check out directly.
	if err := store.UpdateReservationStatus(res.ID, constants.ReservationStatusCheckedOut); err == nil {
		t.Fatal("expected error checking out a confirmed reservation")
	}

	if err := store.UpdateReservationStatus(res.ID, constants.ReservationStatusCheckedIn); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if err := store.UpdateReservationStatus(res.ID, constants.ReservationStatusCancelled); err == nil {
		t.Fatal("expected error cancelling a checked-in reservation")
	}
}

func TestUpdateReservationStatusUnknownID(t *testing.T) {
	store, _, _ := newTestStore(t)

	err := store.UpdateReservationStatus("RMISSING", constants.ReservationStatusCancelled)
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Fatalf("error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestUpdateRoomStatusIsIdempotent(t *testing.T) {
	store, _, room := newTestStore(t)

	for i := 0; i < 2; i++ {
		if err := store.UpdateRoomStatus(room.ID, constants.RoomStatusMaintenance); err != nil {
			t.Fatalf("UpdateRoomStatus call %d: %v", i+1, err)
		}
	}

	got, err := store.GetRoomByID(room.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if got.Status != constants.RoomStatusMaintenance {
		t.Fatalf("room status = %q, want %q", got.Status, constants.RoomStatusMaintenance)
	}
}

func TestUpdateRoomStatusRejectsUnknownStatus(t *testing.T) {
	store, _, room := newTestStore(t)

	if err := store.UpdateRoomStatus(room.ID, "renovating"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestUpdateRoomAppliesPartialFields(t *testing.T) {
	store, _, room := newTestStore(t)

	price := 150.0
	name := "Standard Plus"
	got, err := store.UpdateRoom(room.ID, RoomUpdate{Price: &price, Name: &name})
	if err != nil {
		t.Fatalf("UpdateRoom: %v", err)
	}
	if got.Price != 150 || got.Name != "Standard Plus" {
		t.Fatalf("got price %v name %q, want 150 and Standard Plus", got.Price, got.Name)
	}
	if got.Type != room.Type {
		t.Fatalf("type changed to %q, want %q untouched", got.Type, room.Type)
	}
}

func TestUpdateRoomInvalidTypeLeavesRoomUntouched(t *testing.T) {
	store, _, room := newTestStore(t)

	name := "Renamed"
	badType := "penthouse"
	_, err := store.UpdateRoom(room.ID, RoomUpdate{Name: &name, Type: &badType})
	if errors.CodeOf(err) != errors.ErrCodeValidation {
		t.Fatalf("error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeValidation)
	}

	// A rejected update must not leave partial fields behind.
	got, err := store.GetRoomByID(room.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if got.Name != room.Name {
		t.Fatalf("name = %q, want %q untouched", got.Name, room.Name)
	}
	if got.Type != room.Type {
		t.Fatalf("type = %q, want %q untouched", got.Type, room.Type)
	}
}

func TestDeleteRoomRejectsActiveReservations(t *testing.T) {
	store, guest, room := newTestStore(t)

	res, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-12"))
	if err != nil {
		t.Fatalf("AddReservation: %v", err)
	}

	err = store.DeleteRoom(room.ID)
	if errors.CodeOf(err) != errors.ErrCodeRoomInUse {
		t.Fatalf("error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeRoomInUse)
	}

	if err := store.UpdateReservationStatus(res.ID, constants.ReservationStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := store.DeleteRoom(room.ID); err != nil {
		t.Fatalf("DeleteRoom after cancel: %v", err)
	}
}

func TestBookRoomPricesFromNightlyRate(t *testing.T) {
	store, _, room := newTestStore(t)

	booking, err := store.BookRoom(7, room.ID, "2026-09-10", "2026-09-13", 2)
	if err != nil {
		t.Fatalf("BookRoom: %v", err)
	}
	if booking.TotalAmount != 360 {
		t.Fatalf("total = %v, want 360 (3 nights at 120)", booking.TotalAmount)
	}
	if booking.UserID == nil || *booking.UserID != 7 {
		t.Fatal("expected booking owned by user 7")
	}
	if booking.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("payment status = %q, want %q", booking.PaymentStatus, constants.PaymentStatusPending)
	}

	got, err := store.GetRoomByID(room.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if got.Status != constants.RoomStatusOccupied {
		t.Fatalf("room status = %q, want %q", got.Status, constants.RoomStatusOccupied)
	}
}

func TestBookRoomPricesFromCurrentRate(t *testing.T) {
	store, _, room := newTestStore(t)

	price := 200.0
	if _, err := store.UpdateRoom(room.ID, RoomUpdate{Price: &price}); err != nil {
		t.Fatalf("UpdateRoom: %v", err)
	}

	booking, err := store.BookRoom(7, room.ID, "2026-09-10", "2026-09-12", 1)
	if err != nil {
		t.Fatalf("BookRoom: %v", err)
	}
	if booking.TotalAmount != 400 {
		t.Fatalf("total = %v, want 400 (2 nights at the updated rate)", booking.TotalAmount)
	}
}

func TestBookRoomRejectsSameDayStay(t *testing.T) {
	store, _, room := newTestStore(t)

	_, err := store.BookRoom(7, room.ID, "2026-09-10", "2026-09-10", 1)
	if errors.CodeOf(err) != errors.ErrCodeInvalidRange {
		t.Fatalf("error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeInvalidRange)
	}
}

func TestCancelBookingKeepsBookingInHistory(t *testing.T) {
	store, _, room := newTestStore(t)

	booking, err := store.BookRoom(7, room.ID, "2026-09-10", "2026-09-13", 2)
	if err != nil {
		t.Fatalf("BookRoom: %v", err)
	}
	if err := store.CancelBooking(booking.ID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	bookings := store.UserBookings(7)
	if len(bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(bookings))
	}
	if bookings[0].Status != constants.ReservationStatusCancelled {
		t.Fatalf("status = %q, want %q", bookings[0].Status, constants.ReservationStatusCancelled)
	}

	// Cancelling does not free the room; only an admin action does.
	got, err := store.GetRoomByID(room.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if got.Status != constants.RoomStatusOccupied {
		t.Fatalf("room status = %q, want %q", got.Status, constants.RoomStatusOccupied)
	}
}

func TestUserBookingsKeepsInsertionOrder(t *testing.T) {
	store, _, _ := newTestStore(t)
	if _, err := store.AddRoom(models.Room{ID: "102", Name: "Deluxe Room", Type: constants.RoomTypeDeluxe, Price: 180}); err != nil {
		t.Fatalf("AddRoom: %v", err)
	}

	first, err := store.BookRoom(7, "101", "2026-09-10", "2026-09-12", 1)
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	second, err := store.BookRoom(7, "102", "2026-09-10", "2026-09-12", 1)
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}
	if _, err := store.BookRoom(8, "101", "2026-09-20", "2026-09-22", 1); err != nil {
		t.Fatalf("other user booking: %v", err)
	}

	bookings := store.UserBookings(7)
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	if bookings[0].ID != first.ID || bookings[1].ID != second.ID {
		t.Fatalf("bookings out of order: %s, %s", bookings[0].ID, bookings[1].ID)
	}
}

func TestRecordPayment(t *testing.T) {
	store, guest, room := newTestStore(t)

	res, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-12"))
	if err != nil {
		t.Fatalf("AddReservation: %v", err)
	}
	// 120 of 240 already paid at creation.

	payment, err := store.RecordPayment(res.ID, 60, "card")
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if payment.Amount != 60 || payment.ReservationID != res.ID {
		t.Fatalf("payment = %+v", payment)
	}

	got, err := store.GetReservationByID(res.ID)
	if err != nil {
		t.Fatalf("GetReservationByID: %v", err)
	}
	if got.PaidAmount != 180 {
		t.Fatalf("paid = %v, want 180", got.PaidAmount)
	}
	if got.PaymentStatus != constants.PaymentStatusPartial {
		t.Fatalf("payment status = %q, want %q", got.PaymentStatus, constants.PaymentStatusPartial)
	}

	if _, err := store.RecordPayment(res.ID, 60, "card"); err != nil {
		t.Fatalf("settling payment: %v", err)
	}
	got, _ = store.GetReservationByID(res.ID)
	if got.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("payment status = %q, want %q", got.PaymentStatus, constants.PaymentStatusPaid)
	}

	if payments := store.ReservationPayments(res.ID); len(payments) != 2 {
		t.Fatalf("got %d payments, want 2", len(payments))
	}
}

func TestRecordPaymentRejectsOverpaymentAndInactive(t *testing.T) {
	store, guest, room := newTestStore(t)

	res, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-12"))
	if err != nil {
		t.Fatalf("AddReservation: %v", err)
	}

	if _, err := store.RecordPayment(res.ID, 500, "card"); errors.CodeOf(err) != errors.ErrCodeOverpayment {
		t.Fatalf("error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeOverpayment)
	}
	if _, err := store.RecordPayment(res.ID, 0, "card"); errors.CodeOf(err) != errors.ErrCodeInvalidAmount {
		t.Fatalf("error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeInvalidAmount)
	}

	if err := store.UpdateReservationStatus(res.ID, constants.ReservationStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := store.RecordPayment(res.ID, 60, "card"); errors.CodeOf(err) != errors.ErrCodeInvalidOperation {
		t.Fatalf("error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeInvalidOperation)
	}
}

func TestAddUserRejectsDuplicateEmail(t *testing.T) {
	store, _, _ := newTestStore(t)

	if _, err := store.AddUser(models.User{Email: "user@hotel.com"}); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	_, err := store.AddUser(models.User{Email: "USER@hotel.com"})
	if errors.CodeOf(err) != errors.ErrCodeUserExists {
		t.Fatalf("error code = %q, want %q", errors.CodeOf(err), errors.ErrCodeUserExists)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store, guest, room := newTestStore(t)
	if _, err := store.AddReservation(makeReservation(guest.ID, room.ID, "2026-09-10", "2026-09-12")); err != nil {
		t.Fatalf("AddReservation: %v", err)
	}

	snap := store.Snapshot()
	snap.Rooms[0].Status = constants.RoomStatusMaintenance

	got, err := store.GetRoomByID(room.ID)
	if err != nil {
		t.Fatalf("GetRoomByID: %v", err)
	}
	if got.Status != constants.RoomStatusOccupied {
		t.Fatalf("mutating the snapshot leaked into the store: %q", got.Status)
	}
}
