package services

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
)

// HotelStore holds the authoritative in-memory collections. Every mutation
// runs under the write lock, so a compound update (reservation status plus
// room status) is observed as one atomic transition by readers.
type HotelStore struct {
	mu sync.RWMutex

	guests       []models.Guest
	rooms        []models.Room
	reservations []models.Reservation
	payments     []models.Payment
	users        []models.User

	nextUserID uint
	rng        *rand.Rand
	logger     logger.Logger
}

// HotelStoreOptions holds the dependencies of HotelStore
type HotelStoreOptions struct {
	Logger logger.Logger
}

// NewHotelStore creates an empty store
func NewHotelStore(opts HotelStoreOptions) *HotelStore {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &HotelStore{
		nextUserID: 1,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     l,
	}
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func (s *HotelStore) randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[s.rng.Intn(len(base36))]
	}
	return string(b)
}

func (s *HotelStore) newGuestID() string {
	return s.randomBase36(9)
}

// newReservationID returns a short prefixed code, e.g. R8K2M4A
func (s *HotelStore) newReservationID() string {
	return "R" + strings.ToUpper(s.randomBase36(6))
}

func newRoomID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// ---- Guests ----

// AddGuest appends a new guest with a fresh id and timestamp
func (s *HotelStore) AddGuest(guest models.Guest) models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()

	guest.ID = s.newGuestID()
	guest.CreatedAt = time.Now()
	s.guests = append(s.guests, guest)

	s.logger.Info("guest %s registered", guest.ID)
	return guest
}

// GetGuestByID returns the guest with the given id
func (s *HotelStore) GetGuestByID(id string) (models.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.guests {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Guest{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("guest %s not found", id), errors.ErrGuestNotFound)
}

// Guests returns a copy of the guest collection
func (s *HotelStore) Guests() []models.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Guest, len(s.guests))
	copy(out, s.guests)
	return out
}

// ---- Rooms ----

// AddRoom appends a new room
func (s *HotelStore) AddRoom(room models.Room) (models.Room, error) {
	if err := room.ValidateType(); err != nil {
		return models.Room{}, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if room.Status == "" {
		room.Status = constants.RoomStatusAvailable
	}
	if err := room.ValidateStatus(); err != nil {
		return models.Room{}, errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if room.ID == "" {
		room.ID = newRoomID()
	}
	s.rooms = append(s.rooms, room)
	return room, nil
}

// GetRoomByID returns the room with the given id
func (s *HotelStore) GetRoomByID(id string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Room{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("room %s not found", id), errors.ErrRoomNotFound)
}

// Rooms returns a copy of the room collection
func (s *HotelStore) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// RoomUpdate enumerates the fields an admin may change. Nil means keep.
type RoomUpdate struct {
	Number       *string
	Name         *string
	Description  *string
	Type         *string
	Price        *float64
	Image        *string
	Amenities    *[]string
	MaxOccupancy *int
	Floor        *int
}

// UpdateRoom applies a partial update to a room. The update lands on a
// copy first; a failed update leaves the stored room untouched.
func (s *HotelStore) UpdateRoom(id string, update RoomUpdate) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID != id {
			continue
		}
		room := s.rooms[i]
		if update.Number != nil {
			room.Number = *update.Number
		}
		if update.Name != nil {
			room.Name = *update.Name
		}
		if update.Description != nil {
			room.Description = *update.Description
		}
		if update.Type != nil {
			room.Type = *update.Type
		}
		if update.Price != nil {
			room.Price = *update.Price
		}
		if update.Image != nil {
			room.Image = *update.Image
		}
		if update.Amenities != nil {
			room.Amenities = *update.Amenities
		}
		if update.MaxOccupancy != nil {
			room.MaxOccupancy = *update.MaxOccupancy
		}
		if update.Floor != nil {
			room.Floor = *update.Floor
		}
		if err := room.ValidateType(); err != nil {
			return models.Room{}, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
		}
		s.rooms[i] = room
		return room, nil
	}
	return models.Room{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("room %s not found", id), errors.ErrRoomNotFound)
}

// UpdateRoomStatus overwrites the status of a room. Applying the same
// status twice is a no-op beyond the first call.
func (s *HotelStore) UpdateRoomStatus(id string, status string) error {
	check := models.Room{Status: status}
	if err := check.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms[i].Status = status
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("room %s not found", id), errors.ErrRoomNotFound)
}

// DeleteRoom removes a room. Rooms referenced by an active reservation
// cannot be deleted, so no reservation is left dangling.
func (s *HotelStore) DeleteRoom(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("room %s not found", id), errors.ErrRoomNotFound)
	}

	for _, res := range s.reservations {
		if res.RoomID == id && res.IsActive() {
			return errors.NewAppError(errors.ErrCodeRoomInUse, fmt.Sprintf("room %s has active reservations", id), errors.ErrRoomInUse)
		}
	}

	s.rooms = append(s.rooms[:idx], s.rooms[idx+1:]...)
	return nil
}

// ---- Reservations ----

// AddReservation validates and appends a reservation, marking the room
// occupied in the same critical section.
func (s *HotelStore) AddReservation(res models.Reservation) (models.Reservation, error) {
	checkIn, checkOut, err := ParseStayRange(res.CheckIn, res.CheckOut)
	if err != nil {
		return models.Reservation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addReservationLocked(res, checkIn, checkOut)
}

func (s *HotelStore) addReservationLocked(res models.Reservation, checkIn, checkOut time.Time) (models.Reservation, error) {
	if res.PaidAmount > res.TotalAmount {
		return models.Reservation{}, errors.NewAppError(errors.ErrCodeOverpayment,
			fmt.Sprintf("paid %.2f exceeds total %.2f", res.PaidAmount, res.TotalAmount), errors.ErrOverpayment)
	}

	if res.GuestID != "" {
		if !s.guestExistsLocked(res.GuestID) {
			return models.Reservation{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("guest %s not found", res.GuestID), errors.ErrGuestNotFound)
		}
	}
	roomIdx := s.roomIndexLocked(res.RoomID)
	if roomIdx == -1 {
		return models.Reservation{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("room %s not found", res.RoomID), errors.ErrRoomNotFound)
	}
	if conflict := s.overlappingReservationLocked(res.RoomID, checkIn, checkOut); conflict != "" {
		return models.Reservation{}, errors.NewAppError(errors.ErrCodeOverlap,
			fmt.Sprintf("room %s already booked by reservation %s", res.RoomID, conflict), errors.ErrRoomOverlap)
	}

	res.ID = s.newReservationID()
	res.CreatedAt = time.Now()
	if res.Status == "" {
		res.Status = constants.ReservationStatusConfirmed
	}
	if res.PaymentStatus == "" {
		res.PaymentStatus = constants.PaymentStatusPending
	}
	if res.RoomName == "" {
		res.RoomName = s.rooms[roomIdx].Name
	}
	s.reservations = append(s.reservations, res)
	s.rooms[roomIdx].Status = constants.RoomStatusOccupied

	s.logger.Info("reservation %s created for room %s", res.ID, res.RoomID)
	return res, nil
}

// UpdateReservationStatus advances a reservation through its lifecycle.
// Checking out also flips the room to cleaning, atomically.
func (s *HotelStore) UpdateReservationStatus(id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("reservation %s not found", id), errors.ErrReservationNotFound)
	}

	res := &s.reservations[idx]
	state := models.GetReservationState(res.Status)

	var err error
	switch status {
	case constants.ReservationStatusCheckedIn:
		err = state.CheckIn(res)
	case constants.ReservationStatusCheckedOut:
		err = state.CheckOut(res)
	case constants.ReservationStatusCancelled:
		err = state.Cancel(res)
	default:
		return errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("invalid reservation status: %q", status), nil)
	}
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), nil)
	}

	if status == constants.ReservationStatusCheckedOut {
		if roomIdx := s.roomIndexLocked(res.RoomID); roomIdx != -1 {
			s.rooms[roomIdx].Status = constants.RoomStatusCleaning
		}
	}

	s.logger.Info("reservation %s moved to %s", id, status)
	return nil
}

// GetReservationByID returns the reservation with the given id
func (s *HotelStore) GetReservationByID(id string) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Reservation{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("reservation %s not found", id), errors.ErrReservationNotFound)
}

// Reservations returns a copy of the reservation collection
func (s *HotelStore) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// BookRoom creates a self-service booking for an account holder. The stay
// price is computed from the room's nightly rate under the same write lock
// that creates the reservation, so a concurrent rate change cannot price
// the booking from a stale rate.
func (s *HotelStore) BookRoom(userID uint, roomID, checkIn, checkOut string, guests int) (models.Reservation, error) {
	in, out, err := ParseStayRange(checkIn, checkOut)
	if err != nil {
		return models.Reservation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	roomIdx := s.roomIndexLocked(roomID)
	if roomIdx == -1 {
		return models.Reservation{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("room %s not found", roomID), errors.ErrRoomNotFound)
	}
	room := s.rooms[roomIdx]
	total, err := StayPrice(checkIn, checkOut, room.Price)
	if err != nil {
		return models.Reservation{}, err
	}

	res := models.Reservation{
		UserID:        &userID,
		RoomID:        roomID,
		RoomName:      room.Name,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        constants.ReservationStatusConfirmed,
		TotalAmount:   total,
		PaymentStatus: constants.PaymentStatusPending,
		Guests:        guests,
	}
	return s.addReservationLocked(res, in, out)
}

// CancelBooking cancels a booking. The room keeps its current status;
// only an admin action returns it to available.
func (s *HotelStore) CancelBooking(id string) error {
	return s.UpdateReservationStatus(id, constants.ReservationStatusCancelled)
}

// UserBookings returns the bookings owned by userID, in insertion order
func (s *HotelStore) UserBookings(userID uint) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Reservation, 0)
	for _, r := range s.reservations {
		if r.UserID != nil && *r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// ---- Payments ----

// RecordPayment records a payment against a reservation and moves its
// paid amount forward. Paying past the total is rejected, so PaidAmount
// never exceeds TotalAmount.
func (s *HotelStore) RecordPayment(reservationID string, amount float64, method string) (models.Payment, error) {
	if amount <= 0 {
		return models.Payment{}, errors.NewAppError(errors.ErrCodeInvalidAmount, "payment amount must be positive", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.reservations {
		if s.reservations[i].ID == reservationID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Payment{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("reservation %s not found", reservationID), errors.ErrReservationNotFound)
	}

	res := &s.reservations[idx]
	if !res.IsActive() {
		return models.Payment{}, errors.NewAppError(errors.ErrCodeInvalidOperation, fmt.Sprintf("reservation %s is %s", reservationID, res.Status), nil)
	}
	if res.PaidAmount+amount > res.TotalAmount {
		return models.Payment{}, errors.NewAppError(errors.ErrCodeOverpayment,
			fmt.Sprintf("paying %.2f would exceed total %.2f", amount, res.TotalAmount), errors.ErrOverpayment)
	}

	res.PaidAmount += amount
	if res.PaidAmount >= res.TotalAmount {
		res.PaymentStatus = constants.PaymentStatusPaid
	} else {
		res.PaymentStatus = constants.PaymentStatusPartial
	}

	payment := models.Payment{
		ID:            "P" + strings.ToUpper(s.randomBase36(6)),
		ReservationID: reservationID,
		Amount:        amount,
		Method:        method,
		Status:        constants.PaymentStatusPaid,
		CreatedAt:     time.Now(),
	}
	s.payments = append(s.payments, payment)

	s.logger.Info("payment %s of %.2f recorded for reservation %s", payment.ID, amount, reservationID)
	return payment, nil
}

// ReservationPayments returns the payments recorded for a reservation,
// in insertion order.
func (s *HotelStore) ReservationPayments(reservationID string) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Payment, 0)
	for _, p := range s.payments {
		if p.ReservationID == reservationID {
			out = append(out, p)
		}
	}
	return out
}

// ---- Users ----

// AddUser registers an account. Email must be unique.
func (s *HotelStore) AddUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.User{}, errors.NewAppError(errors.ErrCodeUserExists, fmt.Sprintf("email %s already in use", user.Email), errors.ErrUserAlreadyExists)
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	user.CreatedAt = time.Now()
	s.users = append(s.users, user)
	return user, nil
}

// GetUserByEmail returns the user with the given email
func (s *HotelStore) GetUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, errors.NewAppError(errors.ErrCodeUserNotFound, fmt.Sprintf("user %s not found", email), errors.ErrUserNotFound)
}

// GetUserByID returns the user with the given id
func (s *HotelStore) GetUserByID(id uint) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, errors.NewAppError(errors.ErrCodeUserNotFound, fmt.Sprintf("user %d not found", id), errors.ErrUserNotFound)
}

// ---- Snapshot ----

// Snapshot is a consistent view of the collections the derived queries
// read. Taken under the read lock in one shot.
type Snapshot struct {
	Rooms        []models.Room
	Reservations []models.Reservation
}

// Snapshot returns a consistent copy of rooms and reservations
func (s *HotelStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Rooms:        make([]models.Room, len(s.rooms)),
		Reservations: make([]models.Reservation, len(s.reservations)),
	}
	copy(snap.Rooms, s.rooms)
	copy(snap.Reservations, s.reservations)
	return snap
}

// ---- locked helpers ----

func (s *HotelStore) guestExistsLocked(id string) bool {
	for _, g := range s.guests {
		if g.ID == id {
			return true
		}
	}
	return false
}

func (s *HotelStore) roomIndexLocked(id string) int {
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return i
		}
	}
	return -1
}

// overlappingReservationLocked returns the id of an active reservation on
// roomID whose half-open range intersects [checkIn, checkOut), or empty.
func (s *HotelStore) overlappingReservationLocked(roomID string, checkIn, checkOut time.Time) string {
	for _, r := range s.reservations {
		if r.RoomID != roomID || !r.IsActive() {
			continue
		}
		otherIn, otherOut, err := ParseStayRange(r.CheckIn, r.CheckOut)
		if err != nil {
			continue
		}
		if checkIn.Before(otherOut) && otherIn.Before(checkOut) {
			return r.ID
		}
	}
	return ""
}
