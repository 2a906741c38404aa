package services

import (
	"testing"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
)

func TestComputeDashboardStats(t *testing.T) {
	snap := Snapshot{
		Rooms: []models.Room{
			{ID: "101", Status: constants.RoomStatusAvailable},
			{ID: "102", Status: constants.RoomStatusOccupied},
			{ID: "201", Status: constants.RoomStatusMaintenance},
			{ID: "301", Status: constants.RoomStatusAvailable},
		},
		Reservations: []models.Reservation{
			{ID: "R001", CheckIn: "2026-09-01", Status: constants.ReservationStatusCheckedIn, PaidAmount: 900},
			{ID: "R002", CheckIn: "2026-09-05", Status: constants.ReservationStatusConfirmed, PaidAmount: 120},
			{ID: "R003", CheckIn: "2026-09-01", Status: constants.ReservationStatusCancelled, PaidAmount: 500},
		},
	}

	stats := ComputeDashboardStats(snap, "2026-09-01")

	if stats.TotalRooms != 4 {
		t.Fatalf("TotalRooms = %d, want 4", stats.TotalRooms)
	}
	if stats.OccupiedRooms != 1 || stats.AvailableRooms != 2 || stats.MaintenanceRooms != 1 {
		t.Fatalf("room counts = %d/%d/%d, want 1/2/1",
			stats.OccupiedRooms, stats.AvailableRooms, stats.MaintenanceRooms)
	}
	// The cancelled reservation still counts toward today's arrivals
	// but not toward revenue.
	if stats.TodayReservations != 2 {
		t.Fatalf("TodayReservations = %d, want 2", stats.TodayReservations)
	}
	if stats.TotalRevenue != 1020 {
		t.Fatalf("TotalRevenue = %v, want 1020", stats.TotalRevenue)
	}
	if stats.OccupancyRate != 25 {
		t.Fatalf("OccupancyRate = %d, want 25", stats.OccupancyRate)
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(Snapshot{}, "2026-09-01")
	if stats.OccupancyRate != 0 {
		t.Fatalf("OccupancyRate = %d, want 0 with no rooms", stats.OccupancyRate)
	}
	if stats.TotalRevenue != 0 || stats.TodayReservations != 0 {
		t.Fatalf("expected zeroed aggregates, got %+v", stats)
	}
}

func TestOccupancyRateRounds(t *testing.T) {
	cases := []struct {
		occupied, total, want int
	}{
		{0, 0, 0},
		{1, 4, 25},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := OccupancyRate(tc.occupied, tc.total); got != tc.want {
			t.Errorf("OccupancyRate(%d, %d) = %d, want %d", tc.occupied, tc.total, got, tc.want)
		}
	}
}

func TestNightsAndStayPrice(t *testing.T) {
	nights, err := Nights("2026-09-10", "2026-09-13")
	if err != nil {
		t.Fatalf("Nights: %v", err)
	}
	if nights != 3 {
		t.Fatalf("Nights = %d, want 3", nights)
	}

	total, err := StayPrice("2026-09-10", "2026-09-13", 100)
	if err != nil {
		t.Fatalf("StayPrice: %v", err)
	}
	if total != 300 {
		t.Fatalf("StayPrice = %v, want 300", total)
	}

	// A same-day range is a zero-night, zero-price quote.
	total, err = StayPrice("2026-09-10", "2026-09-10", 100)
	if err != nil {
		t.Fatalf("StayPrice same day: %v", err)
	}
	if total != 0 {
		t.Fatalf("StayPrice same day = %v, want 0", total)
	}
}

func TestParseStayRangeRejectsBadInput(t *testing.T) {
	if _, _, err := ParseStayRange("2026-09-12", "2026-09-10"); errors.CodeOf(err) != errors.ErrCodeInvalidRange {
		t.Fatalf("reversed range: code = %q, want %q", errors.CodeOf(err), errors.ErrCodeInvalidRange)
	}
	if _, _, err := ParseStayRange("not-a-date", "2026-09-10"); errors.CodeOf(err) != errors.ErrCodeInvalidFormat {
		t.Fatalf("malformed date: code = %q, want %q", errors.CodeOf(err), errors.ErrCodeInvalidFormat)
	}
}

func TestUserTotalSpendCountsAllStatuses(t *testing.T) {
	bookings := []models.Reservation{
		{TotalAmount: 360, Status: constants.ReservationStatusConfirmed},
		{TotalAmount: 240, Status: constants.ReservationStatusCancelled},
		{TotalAmount: 500, Status: constants.ReservationStatusCheckedOut},
	}
	if got := UserTotalSpend(bookings); got != 1100 {
		t.Fatalf("UserTotalSpend = %v, want 1100", got)
	}
}
