package controllers

import (
	"stayhub/builders"
	"stayhub/commands"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

// ReservationController handles front-desk reservation management
type ReservationController struct {
	facade *services.BookingFacade
}

// NewReservationController creates a ReservationController
func NewReservationController(facade *services.BookingFacade) *ReservationController {
	return &ReservationController{facade: facade}
}

func (ctl *ReservationController) GetReservations(c *gin.Context) {
	page, limit := pageParams(c)
	status := c.Query("status")

	var reservations []models.Reservation
	for _, res := range ctl.facade.Store().Reservations() {
		if status != "" && res.Status != status {
			continue
		}
		reservations = append(reservations, res)
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}

	response.SuccessWithPagination(c, paginate(reservations, page, limit), page, limit, len(reservations))
}

func (ctl *ReservationController) GetReservationByID(c *gin.Context) {
	res, err := ctl.facade.Store().GetReservationByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, res)
}

func (ctl *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := validator.ValidateReservation(&req); err != nil {
		respondError(c, err)
		return
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = constants.PaymentStatusPending
	}

	reservation := builders.NewReservationBuilder().
		WithGuest(req.GuestID).
		WithRoom(req.RoomID).
		WithStay(req.CheckIn, req.CheckOut).
		WithGuests(req.Guests).
		WithAmounts(req.TotalAmount, req.PaidAmount).
		WithPaymentStatus(paymentStatus).
		WithSpecialRequests(req.SpecialRequests).
		Build()

	cmd := commands.NewCreateReservationCommand(reservation, ctl.facade)
	if err := cmd.Execute(); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, cmd.Created)
}

func (ctl *ReservationController) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	payment, err := ctl.facade.RecordPayment(req.ReservationID, req.Amount, req.Method)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, payment)
}

func (ctl *ReservationController) GetReservationPayments(c *gin.Context) {
	payments := ctl.facade.Store().ReservationPayments(c.Param("id"))
	response.SuccessWithTotal(c, payments, len(payments))
}

func (ctl *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var req dto.ReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	cmd := commands.NewUpdateReservationStatusCommand(req.ID, req.Status, ctl.facade)
	if err := cmd.Execute(); err != nil {
		respondError(c, err)
		return
	}

	res, err := ctl.facade.Store().GetReservationByID(req.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, res)
}
