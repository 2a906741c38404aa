package models

import (
	"testing"

	"stayhub/constants"
)

func TestConfirmedStateTransitions(t *testing.T) {
	res := &Reservation{Status: constants.ReservationStatusConfirmed}
	state := GetReservationState(res.Status)

	if err := state.CheckOut(res); err == nil {
		t.Fatal("expected error checking out before check-in")
	}
	if err := state.CheckIn(res); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if res.Status != constants.ReservationStatusCheckedIn {
		t.Fatalf("status = %q, want %q", res.Status, constants.ReservationStatusCheckedIn)
	}
}

func TestConfirmedStateCancel(t *testing.T) {
	res := &Reservation{Status: constants.ReservationStatusConfirmed}
	if err := GetReservationState(res.Status).Cancel(res); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if res.Status != constants.ReservationStatusCancelled {
		t.Fatalf("status = %q, want %q", res.Status, constants.ReservationStatusCancelled)
	}
}

func TestCheckedInStateTransitions(t *testing.T) {
	res := &Reservation{Status: constants.ReservationStatusCheckedIn}
	state := GetReservationState(res.Status)

	if err := state.CheckIn(res); err == nil {
		t.Fatal("expected error checking in twice")
	}
	if err := state.Cancel(res); err == nil {
		t.Fatal("expected error cancelling a checked-in reservation")
	}
	if err := state.CheckOut(res); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if res.Status != constants.ReservationStatusCheckedOut {
		t.Fatalf("status = %q, want %q", res.Status, constants.ReservationStatusCheckedOut)
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, status := range []string{constants.ReservationStatusCheckedOut, constants.ReservationStatusCancelled} {
		res := &Reservation{Status: status}
		state := GetReservationState(status)
		if err := state.CheckIn(res); err == nil {
			t.Errorf("%s: expected CheckIn to fail", status)
		}
		if err := state.CheckOut(res); err == nil {
			t.Errorf("%s: expected CheckOut to fail", status)
		}
		if err := state.Cancel(res); err == nil {
			t.Errorf("%s: expected Cancel to fail", status)
		}
		if res.Status != status {
			t.Errorf("%s: status mutated to %q", status, res.Status)
		}
	}
}

func TestIsActive(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{constants.ReservationStatusConfirmed, true},
		{constants.ReservationStatusCheckedIn, true},
		{constants.ReservationStatusCheckedOut, false},
		{constants.ReservationStatusCancelled, false},
	}
	for _, tc := range cases {
		r := Reservation{Status: tc.status}
		if got := r.IsActive(); got != tc.want {
			t.Errorf("IsActive(%s) = %v, want %v", tc.status, got, tc.want)
		}
	}
}
