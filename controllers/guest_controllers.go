package controllers

import (
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

// GuestController handles front-desk guest registration and lookup
type GuestController struct {
	store *services.HotelStore
}

// NewGuestController creates a GuestController
func NewGuestController(store *services.HotelStore) *GuestController {
	return &GuestController{store: store}
}

func (ctl *GuestController) GetGuests(c *gin.Context) {
	page, limit := pageParams(c)
	guests := ctl.store.Guests()
	response.SuccessWithPagination(c, paginate(guests, page, limit), page, limit, len(guests))
}

func (ctl *GuestController) GetGuestByID(c *gin.Context) {
	guest, err := ctl.store.GetGuestByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, guest)
}

func (ctl *GuestController) CreateGuest(c *gin.Context) {
	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := validator.ValidateGuest(&req); err != nil {
		respondError(c, err)
		return
	}

	guest := ctl.store.AddGuest(models.Guest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		IDNumber:    req.IDNumber,
		Nationality: req.Nationality,
		DateOfBirth: req.DateOfBirth,
	})

	response.Success(c, guest)
}
