package dto

// DashboardStats is the aggregate block the dashboard reads
type DashboardStats struct {
	TotalRooms        int     `json:"totalRooms"`
	OccupiedRooms     int     `json:"occupiedRooms"`
	AvailableRooms    int     `json:"availableRooms"`
	MaintenanceRooms  int     `json:"maintenanceRooms"`
	TodayReservations int     `json:"todayReservations"`
	TotalRevenue      float64 `json:"totalRevenue"`
	OccupancyRate     int     `json:"occupancyRate"`
}

// QuoteResponse is the price preview for a prospective stay
type QuoteResponse struct {
	RoomID     string  `json:"roomId"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
}
