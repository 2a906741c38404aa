package commands

import (
	"stayhub/models"
	"stayhub/services"
)

// ReservationCommand defines the interface for reservation commands
type ReservationCommand interface {
	Execute() error
}

// CreateReservationCommand creates a new reservation
type CreateReservationCommand struct {
	reservation *models.Reservation
	facade      *services.BookingFacade

	// Created holds the stored reservation after Execute
	Created models.Reservation
}

func NewCreateReservationCommand(reservation *models.Reservation, facade *services.BookingFacade) *CreateReservationCommand {
	return &CreateReservationCommand{
		reservation: reservation,
		facade:      facade,
	}
}

func (c *CreateReservationCommand) Execute() error {
	created, err := c.facade.CreateReservation(*c.reservation)
	if err != nil {
		return err
	}
	c.Created = created
	return nil
}

// UpdateReservationStatusCommand advances a reservation's lifecycle
type UpdateReservationStatusCommand struct {
	id     string
	status string
	facade *services.BookingFacade
}

func NewUpdateReservationStatusCommand(id, status string, facade *services.BookingFacade) *UpdateReservationStatusCommand {
	return &UpdateReservationStatusCommand{
		id:     id,
		status: status,
		facade: facade,
	}
}

func (c *UpdateReservationStatusCommand) Execute() error {
	return c.facade.UpdateReservationStatus(c.id, c.status)
}

// CancelBookingCommand cancels a self-service booking
type CancelBookingCommand struct {
	id     string
	facade *services.BookingFacade
}

func NewCancelBookingCommand(id string, facade *services.BookingFacade) *CancelBookingCommand {
	return &CancelBookingCommand{
		id:     id,
		facade: facade,
	}
}

func (c *CancelBookingCommand) Execute() error {
	return c.facade.CancelBooking(c.id)
}
