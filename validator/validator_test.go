package validator

import (
	"testing"

	"stayhub/dto"
	"stayhub/errors"
)

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@hotel.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	if errors.CodeOf(ValidateEmail("")) != errors.ErrCodeRequiredField {
		t.Fatal("empty email should be a required-field error")
	}
	if errors.CodeOf(ValidateEmail("not-an-email")) != errors.ErrCodeInvalidEmail {
		t.Fatal("malformed email should be an invalid-email error")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret1"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
	if errors.CodeOf(ValidatePassword("abc")) != errors.ErrCodeInvalidPassword {
		t.Fatal("short password should be rejected")
	}
}

func validReservationRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		GuestID:     "1",
		RoomID:      "101",
		CheckIn:     "2026-09-10",
		CheckOut:    "2026-09-12",
		TotalAmount: 240,
		PaidAmount:  120,
		Guests:      2,
	}
}

func TestValidateReservation(t *testing.T) {
	req := validReservationRequest()
	if err := ValidateReservation(&req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*dto.CreateReservationRequest)
		want   errors.ErrorCode
	}{
		{"missing guest", func(r *dto.CreateReservationRequest) { r.GuestID = "" }, errors.ErrCodeRequiredField},
		{"missing room", func(r *dto.CreateReservationRequest) { r.RoomID = "" }, errors.ErrCodeRequiredField},
		{"bad check-in", func(r *dto.CreateReservationRequest) { r.CheckIn = "10-09-2026" }, errors.ErrCodeInvalidFormat},
		{"equal dates", func(r *dto.CreateReservationRequest) { r.CheckOut = r.CheckIn }, errors.ErrCodeInvalidRange},
		{"reversed dates", func(r *dto.CreateReservationRequest) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }, errors.ErrCodeInvalidRange},
		{"negative total", func(r *dto.CreateReservationRequest) { r.TotalAmount = -1 }, errors.ErrCodeInvalidAmount},
		{"overpayment", func(r *dto.CreateReservationRequest) { r.PaidAmount = r.TotalAmount + 1 }, errors.ErrCodeOverpayment},
		{"zero guests", func(r *dto.CreateReservationRequest) { r.Guests = 0 }, errors.ErrCodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validReservationRequest()
			tc.mutate(&req)
			if got := errors.CodeOf(ValidateReservation(&req)); got != tc.want {
				t.Fatalf("error code = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidateBooking(t *testing.T) {
	req := dto.BookRoomRequest{RoomID: "101", CheckIn: "2026-09-10", CheckOut: "2026-09-12", Guests: 2}
	if err := ValidateBooking(&req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req.CheckOut = req.CheckIn
	if errors.CodeOf(ValidateBooking(&req)) != errors.ErrCodeInvalidRange {
		t.Fatal("same-day booking should be an invalid-range error")
	}

	req = dto.BookRoomRequest{RoomID: "101", CheckIn: "2026-09-10", CheckOut: "2026-09-12", Guests: 0}
	if errors.CodeOf(ValidateBooking(&req)) != errors.ErrCodeValidation {
		t.Fatal("zero guests should be rejected")
	}
}

func TestValidateGuest(t *testing.T) {
	req := dto.CreateGuestRequest{FirstName: "John", LastName: "Smith", Email: "john@example.com", DateOfBirth: "1990-01-15"}
	if err := ValidateGuest(&req); err != nil {
		t.Fatalf("valid guest rejected: %v", err)
	}

	req.DateOfBirth = "15/01/1990"
	if errors.CodeOf(ValidateGuest(&req)) != errors.ErrCodeInvalidFormat {
		t.Fatal("malformed date of birth should be rejected")
	}

	req = dto.CreateGuestRequest{LastName: "Smith"}
	if errors.CodeOf(ValidateGuest(&req)) != errors.ErrCodeRequiredField {
		t.Fatal("missing first name should be rejected")
	}
}

func TestValidateProduct(t *testing.T) {
	req := dto.CreateProductRequest{Name: "Organic Bananas", Category: "fruits", Price: 2.99, Stock: 50}
	if err := ValidateProduct(&req); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}

	req.Discount = 120
	if errors.CodeOf(ValidateProduct(&req)) != errors.ErrCodeInvalidAmount {
		t.Fatal("discount above 100 should be rejected")
	}
}
