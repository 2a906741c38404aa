package models

import (
	"fmt"

	"stayhub/constants"
)

type Room struct {
	ID           string   `json:"id"`
	Number       string   `json:"number"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Status       string   `json:"status"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	Amenities    []string `json:"amenities"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Floor        int      `json:"floor"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusOccupied,
		constants.RoomStatusMaintenance, constants.RoomStatusCleaning:
		return nil
	}
	return fmt.Errorf("invalid room status: %q", r.Status)
}

func (r *Room) ValidateType() error {
	switch r.Type {
	case constants.RoomTypeStandard, constants.RoomTypeDeluxe,
		constants.RoomTypeSuite, constants.RoomTypePresidential:
		return nil
	}
	return fmt.Errorf("invalid room type: %q", r.Type)
}
