package services

import (
	"fmt"
	"math"
	"time"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("invalid date: %q", value), err)
	}
	return t, nil
}

// ParseStayRange parses a stay interval and requires check-out to be
// strictly after check-in.
func ParseStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange,
			fmt.Sprintf("check-out %s must be after check-in %s", checkOut, checkIn), errors.ErrInvalidDateRange)
	}
	return in, out, nil
}

// Nights returns the number of nights between two dates, rounding partial
// days up. Equal dates yield zero nights.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(out.Sub(in).Hours() / 24)), nil
}

// StayPrice computes the price of a prospective stay: nights times the
// nightly rate. A same-day range prices at zero.
func StayPrice(checkIn, checkOut string, nightlyPrice float64) (float64, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return float64(nights) * nightlyPrice, nil
}

// Today returns the current calendar date in YYYY-MM-DD form
func Today() string {
	return time.Now().Format(dateLayout)
}

// ComputeDashboardStats derives the dashboard aggregates from a snapshot.
// Pure; never mutates its inputs.
func ComputeDashboardStats(snap Snapshot, today string) dto.DashboardStats {
	stats := dto.DashboardStats{
		TotalRooms: len(snap.Rooms),
	}

	for _, room := range snap.Rooms {
		switch room.Status {
		case constants.RoomStatusOccupied:
			stats.OccupiedRooms++
		case constants.RoomStatusAvailable:
			stats.AvailableRooms++
		case constants.RoomStatusMaintenance:
			stats.MaintenanceRooms++
		}
	}

	for _, res := range snap.Reservations {
		if res.CheckIn == today {
			stats.TodayReservations++
		}
		if res.Status != constants.ReservationStatusCancelled {
			stats.TotalRevenue += res.PaidAmount
		}
	}

	stats.OccupancyRate = OccupancyRate(stats.OccupiedRooms, stats.TotalRooms)
	return stats
}

// OccupancyRate is the occupied share of rooms as a rounded integer
// percentage. Zero rooms yield zero rather than a division by zero.
func OccupancyRate(occupied, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

// UserTotalSpend sums the total price over a user's bookings. All
// statuses count, including cancelled ones, matching the dashboard the
// storefront has always shown.
func UserTotalSpend(bookings []models.Reservation) float64 {
	total := 0.0
	for _, b := range bookings {
		total += b.TotalAmount
	}
	return total
}
