package models

import (
	"errors"

	"stayhub/constants"
)

// ReservationState defines the interface for reservation lifecycle states
type ReservationState interface {
	CheckIn(res *Reservation) error
	CheckOut(res *Reservation) error
	Cancel(res *Reservation) error
}

// ConfirmedState is a reservation waiting for arrival
type ConfirmedState struct{}

func (s *ConfirmedState) CheckIn(res *Reservation) error {
	res.Status = constants.ReservationStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(res *Reservation) error {
	return errors.New("cannot check out a reservation that has not checked in")
}

func (s *ConfirmedState) Cancel(res *Reservation) error {
	res.Status = constants.ReservationStatusCancelled
	return nil
}

// CheckedInState is a guest currently staying
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(res *Reservation) error {
	return errors.New("reservation already checked in")
}

func (s *CheckedInState) CheckOut(res *Reservation) error {
	res.Status = constants.ReservationStatusCheckedOut
	return nil
}

func (s *CheckedInState) Cancel(res *Reservation) error {
	return errors.New("cannot cancel a checked-in reservation")
}

// CheckedOutState is a completed stay
type CheckedOutState struct{}

func (s *CheckedOutState) CheckIn(res *Reservation) error {
	return errors.New("reservation already checked out")
}

func (s *CheckedOutState) CheckOut(res *Reservation) error {
	return errors.New("reservation already checked out")
}

func (s *CheckedOutState) Cancel(res *Reservation) error {
	return errors.New("cannot cancel a checked-out reservation")
}

// CancelledState is a cancelled reservation
type CancelledState struct{}

func (s *CancelledState) CheckIn(res *Reservation) error {
	return errors.New("cannot check in a cancelled reservation")
}

func (s *CancelledState) CheckOut(res *Reservation) error {
	return errors.New("cannot check out a cancelled reservation")
}

func (s *CancelledState) Cancel(res *Reservation) error {
	return errors.New("reservation already cancelled")
}

// GetReservationState returns the state matching the reservation status
func GetReservationState(status string) ReservationState {
	switch status {
	case constants.ReservationStatusConfirmed:
		return &ConfirmedState{}
	case constants.ReservationStatusCheckedIn:
		return &CheckedInState{}
	case constants.ReservationStatusCheckedOut:
		return &CheckedOutState{}
	case constants.ReservationStatusCancelled:
		return &CancelledState{}
	default:
		return &ConfirmedState{}
	}
}

// IsActive reports whether the reservation still holds its room
// (confirmed or checked-in).
func (r *Reservation) IsActive() bool {
	return r.Status == constants.ReservationStatusConfirmed ||
		r.Status == constants.ReservationStatusCheckedIn
}
