package controllers

import (
	"stayhub/commands"
	"stayhub/dto"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

// BookingController handles self-service bookings made by signed-in users
type BookingController struct {
	facade *services.BookingFacade
}

// NewBookingController creates a BookingController
func NewBookingController(facade *services.BookingFacade) *BookingController {
	return &BookingController{facade: facade}
}

func (ctl *BookingController) BookRoom(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := validator.ValidateBooking(&req); err != nil {
		respondError(c, err)
		return
	}

	booking, err := ctl.facade.BookRoom(userID, req.RoomID, req.CheckIn, req.CheckOut, req.Guests)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, booking)
}

func (ctl *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	booking, err := ctl.facade.Store().GetReservationByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if booking.UserID == nil || *booking.UserID != userID {
		response.Forbidden(c)
		return
	}

	cmd := commands.NewCancelBookingCommand(id, ctl.facade)
	if err := cmd.Execute(); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetBookingHistory returns the caller's bookings with their lifetime spend
func (ctl *BookingController) GetBookingHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookings := ctl.facade.Store().UserBookings(userID)
	response.Success(c, dto.BookingHistoryResponse{
		Bookings:   bookings,
		TotalSpend: services.UserTotalSpend(bookings),
	})
}

// GetQuote prices a prospective stay without creating anything
func (ctl *BookingController) GetQuote(c *gin.Context) {
	roomID := c.Query("roomId")
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	if roomID == "" || checkIn == "" || checkOut == "" {
		response.BadRequest(c, "roomId, checkIn and checkOut are required")
		return
	}

	room, err := ctl.facade.Store().GetRoomByID(roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	nights, err := services.Nights(checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := services.StayPrice(checkIn, checkOut, room.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, dto.QuoteResponse{
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     nights,
		TotalPrice: total,
	})
}
