package dto

// CreateGuestRequest is the request to register a guest at the front desk
type CreateGuestRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	IDNumber    string `json:"idNumber"`
	Nationality string `json:"nationality"`
	DateOfBirth string `json:"dateOfBirth"`
}
