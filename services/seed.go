package services

import (
	"log"
	"time"

	"stayhub/constants"
	"stayhub/models"

	"golang.org/x/crypto/bcrypt"
)

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	return string(hashed)
}

func parseSeedTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SeedDemoData loads the demo dataset into the store: two guests, the
// room inventory, two in-flight reservations and the two demo accounts.
func SeedDemoData(store *HotelStore) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.guests = []models.Guest{
		{
			ID:          "1",
			FirstName:   "John",
			LastName:    "Smith",
			Email:       "john.smith@email.com",
			Phone:       "+1-555-0123",
			Address:     "123 Main St, New York, NY",
			IDNumber:    "ID123456789",
			Nationality: "USA",
			DateOfBirth: "1985-06-15",
			CreatedAt:   parseSeedTime("2024-01-15T10:00:00Z"),
		},
		{
			ID:          "2",
			FirstName:   "Emma",
			LastName:    "Johnson",
			Email:       "emma.johnson@email.com",
			Phone:       "+1-555-0124",
			Address:     "456 Oak Ave, Los Angeles, CA",
			IDNumber:    "ID987654321",
			Nationality: "USA",
			DateOfBirth: "1990-03-22",
			CreatedAt:   parseSeedTime("2024-01-16T14:30:00Z"),
		},
	}

	store.rooms = []models.Room{
		{
			ID:           "101",
			Number:       "101",
			Name:         "Standard Room 101",
			Type:         constants.RoomTypeStandard,
			Status:       constants.RoomStatusAvailable,
			Price:        120,
			Amenities:    []string{"WiFi", "TV", "AC", "Mini Bar"},
			MaxOccupancy: 2,
			Floor:        1,
		},
		{
			ID:           "102",
			Number:       "102",
			Name:         "Deluxe Room 102",
			Type:         constants.RoomTypeDeluxe,
			Status:       constants.RoomStatusOccupied,
			Price:        180,
			Amenities:    []string{"WiFi", "TV", "AC", "Mini Bar", "Balcony", "Room Service"},
			MaxOccupancy: 3,
			Floor:        1,
		},
		{
			ID:           "201",
			Number:       "201",
			Name:         "Suite 201",
			Type:         constants.RoomTypeSuite,
			Status:       constants.RoomStatusMaintenance,
			Price:        300,
			Amenities:    []string{"WiFi", "TV", "AC", "Mini Bar", "Balcony", "Room Service", "Kitchen"},
			MaxOccupancy: 4,
			Floor:        2,
		},
		{
			ID:           "301",
			Number:       "301",
			Name:         "Presidential Suite 301",
			Type:         constants.RoomTypePresidential,
			Status:       constants.RoomStatusAvailable,
			Price:        500,
			Amenities:    []string{"WiFi", "TV", "AC", "Mini Bar", "Balcony", "Room Service", "Kitchen", "Jacuzzi"},
			MaxOccupancy: 6,
			Floor:        3,
		},
		{
			ID:           "401",
			Number:       "401",
			Name:         "Deluxe Ocean View",
			Description:  "Spacious room with stunning ocean views and premium amenities.",
			Type:         constants.RoomTypeDeluxe,
			Status:       constants.RoomStatusAvailable,
			Price:        299,
			Image:        "https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
			Amenities:    []string{"Ocean View", "King Bed", "Mini Bar", "WiFi", "Room Service"},
			MaxOccupancy: 2,
			Floor:        4,
		},
		{
			ID:           "402",
			Number:       "402",
			Name:         "Executive Suite",
			Description:  "Luxurious suite perfect for business travelers and special occasions.",
			Type:         constants.RoomTypeSuite,
			Status:       constants.RoomStatusAvailable,
			Price:        499,
			Image:        "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg",
			Amenities:    []string{"Separate Living Area", "King Bed", "Business Desk", "WiFi", "Concierge"},
			MaxOccupancy: 4,
			Floor:        4,
		},
		{
			ID:           "403",
			Number:       "403",
			Name:         "Standard Room",
			Description:  "Comfortable and affordable room with all essential amenities.",
			Type:         constants.RoomTypeStandard,
			Status:       constants.RoomStatusAvailable,
			Price:        149,
			Image:        "https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg",
			Amenities:    []string{"Queen Bed", "WiFi", "Air Conditioning", "TV"},
			MaxOccupancy: 2,
			Floor:        4,
		},
	}

	store.reservations = []models.Reservation{
		{
			ID:              "R001",
			GuestID:         "1",
			RoomID:          "102",
			CheckIn:         "2024-01-20",
			CheckOut:        "2024-01-25",
			Status:          constants.ReservationStatusCheckedIn,
			TotalAmount:     900,
			PaidAmount:      900,
			PaymentStatus:   constants.PaymentStatusPaid,
			Guests:          2,
			SpecialRequests: "Late checkout requested",
			CreatedAt:       parseSeedTime("2024-01-15T10:00:00Z"),
		},
		{
			ID:            "R002",
			GuestID:       "2",
			RoomID:        "101",
			CheckIn:       "2024-01-22",
			CheckOut:      "2024-01-24",
			Status:        constants.ReservationStatusConfirmed,
			TotalAmount:   240,
			PaidAmount:    120,
			PaymentStatus: constants.PaymentStatusPartial,
			Guests:        1,
			CreatedAt:     parseSeedTime("2024-01-16T14:30:00Z"),
		},
	}

	store.users = []models.User{
		{
			ID:        1,
			Email:     "admin@hotel.com",
			Password:  mustHash("admin123"),
			FirstName: "Admin",
			LastName:  "User",
			Role:      constants.RoleAdmin,
			CreatedAt: time.Now(),
		},
		{
			ID:        2,
			Email:     "user@hotel.com",
			Password:  mustHash("user123"),
			FirstName: "Regular",
			LastName:  "User",
			Role:      constants.RoleUser,
			CreatedAt: time.Now(),
		},
	}
	store.nextUserID = 3

	store.logger.Info("seeded %d guests, %d rooms, %d reservations, %d users",
		len(store.guests), len(store.rooms), len(store.reservations), len(store.users))
}

// SeedProducts returns the demo grocery catalog
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Organic Bananas",
			Description: "Sweet and delicious organic bananas, perfect for snacking or baking.",
			Price:       1.99,
			Image:       "https://images.pexels.com/photos/1166648/pexels-photo-1166648.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Fruits & Vegetables",
			Stock:       45,
			Featured:    true,
			Unit:        "bunch",
		},
		{
			ID:          "2",
			Name:        "Fresh Strawberries",
			Description: "Juicy, ripe strawberries, perfect for desserts or healthy snacking.",
			Price:       3.99,
			Image:       "https://images.pexels.com/photos/46174/strawberries-berries-fruit-freshness-46174.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Fruits & Vegetables",
			Stock:       30,
			Featured:    true,
			Discount:    10,
			Unit:        "box",
		},
		{
			ID:          "3",
			Name:        "Whole Milk",
			Description: "Farm-fresh whole milk, pasteurized and homogenized.",
			Price:       2.49,
			Image:       "https://images.pexels.com/photos/5779650/pexels-photo-5779650.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Dairy & Eggs",
			Stock:       20,
			Unit:        "gallon",
		},
		{
			ID:          "4",
			Name:        "Large Brown Eggs",
			Description: "Farm-fresh large brown eggs from free-range chickens.",
			Price:       3.49,
			Image:       "https://images.pexels.com/photos/162712/egg-white-food-protein-162712.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Dairy & Eggs",
			Stock:       36,
			Featured:    true,
			Unit:        "dozen",
		},
		{
			ID:          "5",
			Name:        "Grass-fed Beef",
			Description: "Premium grass-fed beef, perfect for steaks and burgers.",
			Price:       8.99,
			Image:       "https://images.pexels.com/photos/618775/pexels-photo-618775.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Meat & Seafood",
			Stock:       15,
			Unit:        "lb",
		},
		{
			ID:          "6",
			Name:        "Fresh Atlantic Salmon",
			Description: "Wild-caught Atlantic salmon, rich in omega-3 fatty acids.",
			Price:       12.99,
			Image:       "https://images.pexels.com/photos/3296280/pexels-photo-3296280.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Meat & Seafood",
			Stock:       10,
			Featured:    true,
			Discount:    15,
			Unit:        "lb",
		},
		{
			ID:          "7",
			Name:        "Artisan Sourdough Bread",
			Description: "Handcrafted sourdough bread with a crispy crust and chewy interior.",
			Price:       4.99,
			Image:       "https://images.pexels.com/photos/1775043/pexels-photo-1775043.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Bakery",
			Stock:       8,
			Featured:    true,
			Unit:        "loaf",
		},
		{
			ID:          "8",
			Name:        "Chocolate Chip Cookies",
			Description: "Freshly baked chocolate chip cookies made with premium ingredients.",
			Price:       3.99,
			Image:       "https://images.pexels.com/photos/890577/pexels-photo-890577.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Bakery",
			Stock:       24,
			Unit:        "dozen",
		},
		{
			ID:          "9",
			Name:        "Organic Pasta",
			Description: "Organic durum wheat pasta, perfect for a variety of dishes.",
			Price:       2.29,
			Image:       "https://images.pexels.com/photos/6287525/pexels-photo-6287525.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Pantry",
			Stock:       40,
			Unit:        "box",
		},
		{
			ID:          "10",
			Name:        "Extra Virgin Olive Oil",
			Description: "Cold-pressed extra virgin olive oil from Italy.",
			Price:       8.99,
			Image:       "https://images.pexels.com/photos/33783/olive-oil-salad-dressing-cooking.jpg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Pantry",
			Stock:       15,
			Featured:    true,
			Unit:        "bottle",
		},
		{
			ID:          "11",
			Name:        "Organic Green Tea",
			Description: "Premium organic green tea with antioxidant properties.",
			Price:       4.49,
			Image:       "https://images.pexels.com/photos/1417945/pexels-photo-1417945.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Beverages",
			Stock:       30,
			Unit:        "box",
		},
		{
			ID:          "12",
			Name:        "Fresh Orange Juice",
			Description: "Freshly squeezed orange juice with no added sugar.",
			Price:       3.99,
			Image:       "https://images.pexels.com/photos/892615/pexels-photo-892615.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Beverages",
			Stock:       12,
			Featured:    true,
			Discount:    5,
			Unit:        "bottle",
		},
	}
}
