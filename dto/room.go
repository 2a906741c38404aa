package dto

// CreateRoomRequest is the request to add a room
type CreateRoomRequest struct {
	Number       string   `json:"number"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Type         string   `json:"type" binding:"required"`
	Price        float64  `json:"price" binding:"required"`
	Image        string   `json:"image"`
	Amenities    []string `json:"amenities"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Floor        int      `json:"floor"`
}

// UpdateRoomRequest carries a partial room update. Only non-nil fields
// are applied.
type UpdateRoomRequest struct {
	ID           string    `json:"id" binding:"required"`
	Number       *string   `json:"number"`
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Type         *string   `json:"type"`
	Price        *float64  `json:"price"`
	Image        *string   `json:"image"`
	Amenities    *[]string `json:"amenities"`
	MaxOccupancy *int      `json:"maxOccupancy"`
	Floor        *int      `json:"floor"`
}

// RoomStatusRequest is the request to change the status of a room
type RoomStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}
