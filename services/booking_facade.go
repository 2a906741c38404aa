package services

import (
	"context"
	"log"

	"stayhub/models"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

// BookingFacade wraps the store's mutating operations with the side
// effects every mutation shares: dropping the cached dashboard stats and
// pushing fresh ones to websocket clients. Cache and broadcast failures
// are logged, never surfaced; the mutation itself already succeeded.
type BookingFacade struct {
	store *HotelStore
	rdb   *redis.Client
	m     *melody.Melody
}

// NewBookingFacade creates a facade over the store
func NewBookingFacade(store *HotelStore, rdb *redis.Client, m *melody.Melody) *BookingFacade {
	return &BookingFacade{
		store: store,
		rdb:   rdb,
		m:     m,
	}
}

// Store exposes the underlying store for read paths
func (f *BookingFacade) Store() *HotelStore {
	return f.store
}

func (f *BookingFacade) afterMutation() {
	stats := ComputeDashboardStats(f.store.Snapshot(), Today())

	if f.rdb != nil {
		ctx := context.Background()
		if err := InvalidateStatsCache(ctx, f.rdb); err != nil {
			log.Printf("Failed to invalidate stats cache: %v", err)
		}
		if err := SaveStatsCache(ctx, f.rdb, stats); err != nil {
			log.Printf("Failed to refresh stats cache: %v", err)
		}
	}

	BroadcastStats(f.m, stats)
}

// CreateReservation creates a front-desk reservation
func (f *BookingFacade) CreateReservation(res models.Reservation) (models.Reservation, error) {
	created, err := f.store.AddReservation(res)
	if err != nil {
		return models.Reservation{}, err
	}
	f.afterMutation()
	return created, nil
}

// UpdateReservationStatus advances a reservation
func (f *BookingFacade) UpdateReservationStatus(id, status string) error {
	if err := f.store.UpdateReservationStatus(id, status); err != nil {
		return err
	}
	f.afterMutation()
	return nil
}

// BookRoom creates a self-service booking
func (f *BookingFacade) BookRoom(userID uint, roomID, checkIn, checkOut string, guests int) (models.Reservation, error) {
	booking, err := f.store.BookRoom(userID, roomID, checkIn, checkOut, guests)
	if err != nil {
		return models.Reservation{}, err
	}
	f.afterMutation()
	return booking, nil
}

// CancelBooking cancels a self-service booking
func (f *BookingFacade) CancelBooking(id string) error {
	if err := f.store.CancelBooking(id); err != nil {
		return err
	}
	f.afterMutation()
	return nil
}

// RecordPayment records a payment against a reservation
func (f *BookingFacade) RecordPayment(reservationID string, amount float64, method string) (models.Payment, error) {
	payment, err := f.store.RecordPayment(reservationID, amount, method)
	if err != nil {
		return models.Payment{}, err
	}
	f.afterMutation()
	return payment, nil
}

// AddRoom adds a room to the inventory
func (f *BookingFacade) AddRoom(room models.Room) (models.Room, error) {
	created, err := f.store.AddRoom(room)
	if err != nil {
		return models.Room{}, err
	}
	f.afterMutation()
	return created, nil
}

// UpdateRoom applies a partial room update
func (f *BookingFacade) UpdateRoom(id string, update RoomUpdate) (models.Room, error) {
	updated, err := f.store.UpdateRoom(id, update)
	if err != nil {
		return models.Room{}, err
	}
	f.afterMutation()
	return updated, nil
}

// UpdateRoomStatus changes a room's status
func (f *BookingFacade) UpdateRoomStatus(id, status string) error {
	if err := f.store.UpdateRoomStatus(id, status); err != nil {
		return err
	}
	f.afterMutation()
	return nil
}

// DeleteRoom removes a room from the inventory
func (f *BookingFacade) DeleteRoom(id string) error {
	if err := f.store.DeleteRoom(id); err != nil {
		return err
	}
	f.afterMutation()
	return nil
}
