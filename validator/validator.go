package validator

import (
	"regexp"
	"time"

	"stayhub/dto"
	"stayhub/errors"
)

const dateLayout = "2006-01-02"

// isValidEmail reports whether email looks valid
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidateEmail checks an email address
func ValidateEmail(email string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email must not be empty", nil)
	}
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}
	return nil
}

// ValidatePassword checks password strength
func ValidatePassword(password string) error {
	if password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password must have at least 6 characters", nil)
	}
	return nil
}

// ValidateGuest validates a front-desk guest registration
func ValidateGuest(req *dto.CreateGuestRequest) error {
	if req.FirstName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "First name must not be empty", nil)
	}
	if req.LastName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Last name must not be empty", nil)
	}
	if req.Email != "" && !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}
	if req.DateOfBirth != "" {
		if _, err := time.Parse(dateLayout, req.DateOfBirth); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date of birth", err)
		}
	}
	return nil
}

// ValidateReservation validates a front-desk reservation request
func ValidateReservation(req *dto.CreateReservationRequest) error {
	if req.GuestID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest id must not be empty", nil)
	}
	if req.RoomID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room id must not be empty", nil)
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-in date", err)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-out date", err)
	}
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Check-out must be after check-in", nil)
	}

	if req.TotalAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Total amount must not be negative", nil)
	}
	if req.PaidAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Paid amount must not be negative", nil)
	}
	if req.PaidAmount > req.TotalAmount {
		return errors.NewAppError(errors.ErrCodeOverpayment, "Paid amount must not exceed total amount", nil)
	}
	if req.Guests <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Party size must be at least 1", nil)
	}

	return nil
}

// ValidateBooking validates a self-service booking request
func ValidateBooking(req *dto.BookRoomRequest) error {
	if req.RoomID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room id must not be empty", nil)
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-in date", err)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-out date", err)
	}
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Check-out must be after check-in", nil)
	}

	if req.Guests <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Guest count must be at least 1", nil)
	}

	return nil
}

// ValidateRoom validates a room creation request
func ValidateRoom(req *dto.CreateRoomRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room name must not be empty", nil)
	}
	if req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Price must not be negative", nil)
	}
	if req.MaxOccupancy < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Max occupancy must not be negative", nil)
	}
	return nil
}

// ValidateProduct validates a catalog product creation request
func ValidateProduct(req *dto.CreateProductRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Product name must not be empty", nil)
	}
	if req.Category == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Category must not be empty", nil)
	}
	if req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Price must not be negative", nil)
	}
	if req.Stock < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Stock must not be negative", nil)
	}
	if req.Discount < 0 || req.Discount > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Discount must be between 0 and 100", nil)
	}
	return nil
}
