package controllers

import (
	"strings"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

// RoomController handles room inventory reads and admin mutations
type RoomController struct {
	facade *services.BookingFacade
}

// NewRoomController creates a RoomController
func NewRoomController(facade *services.BookingFacade) *RoomController {
	return &RoomController{facade: facade}
}

func matchesRoomFilters(room models.Room, status, roomType, search string) bool {
	if status != "" && room.Status != status {
		return false
	}
	if roomType != "" && room.Type != roomType {
		return false
	}
	if search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(room.Name), needle) &&
			!strings.Contains(strings.ToLower(room.Number), needle) &&
			!strings.Contains(strings.ToLower(room.Description), needle) {
			return false
		}
	}
	return true
}

func (ctl *RoomController) GetRooms(c *gin.Context) {
	page, limit := pageParams(c)
	status := c.Query("status")
	roomType := c.Query("type")
	search := c.Query("search")

	var rooms []models.Room
	for _, room := range ctl.facade.Store().Rooms() {
		if matchesRoomFilters(room, status, roomType, search) {
			rooms = append(rooms, room)
		}
	}
	if rooms == nil {
		rooms = []models.Room{}
	}

	response.SuccessWithPagination(c, paginate(rooms, page, limit), page, limit, len(rooms))
}

func (ctl *RoomController) GetRoomByID(c *gin.Context) {
	room, err := ctl.facade.Store().GetRoomByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, room)
}

// GetAvailableRooms lists rooms open for booking
func (ctl *RoomController) GetAvailableRooms(c *gin.Context) {
	var rooms []models.Room
	for _, room := range ctl.facade.Store().Rooms() {
		if room.Status == constants.RoomStatusAvailable {
			rooms = append(rooms, room)
		}
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	response.SuccessWithTotal(c, rooms, len(rooms))
}

func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := validator.ValidateRoom(&req); err != nil {
		respondError(c, err)
		return
	}

	room, err := ctl.facade.AddRoom(models.Room{
		Number:       req.Number,
		Name:         req.Name,
		Description:  req.Description,
		Type:         req.Type,
		Status:       constants.RoomStatusAvailable,
		Price:        req.Price,
		Image:        req.Image,
		Amenities:    req.Amenities,
		MaxOccupancy: req.MaxOccupancy,
		Floor:        req.Floor,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, room)
}

func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	room, err := ctl.facade.UpdateRoom(req.ID, services.RoomUpdate{
		Number:       req.Number,
		Name:         req.Name,
		Description:  req.Description,
		Type:         req.Type,
		Price:        req.Price,
		Image:        req.Image,
		Amenities:    req.Amenities,
		MaxOccupancy: req.MaxOccupancy,
		Floor:        req.Floor,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, room)
}

func (ctl *RoomController) UpdateRoomStatus(c *gin.Context) {
	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := ctl.facade.UpdateRoomStatus(req.ID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, gin.H{"id": req.ID, "status": req.Status})
}

func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.facade.DeleteRoom(id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}
