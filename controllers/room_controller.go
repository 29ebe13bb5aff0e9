package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"stayhub-backend/models"
	"stayhub-backend/repositories"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type RoomPayload struct {
	RoomNumber    string         `json:"room_number" binding:"required"`
	RoomType      string         `json:"room_type" binding:"required,oneof=standard deluxe suite"`
	PricePerNight float64        `json:"price_per_night" binding:"required,gt=0"`
	Capacity      int            `json:"capacity" binding:"required,gt=0"`
	Description   string         `json:"description"`
	Floor         int            `json:"floor"`
	ImageURL      string         `json:"image_url"`
	Amenities     datatypes.JSON `json:"amenities"`
	IsAvailable   *bool          `json:"is_available"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// roomFilterFromQuery reads the list filters. Malformed numbers are
// ignored rather than rejected, matching lenient catalog browsing.
func roomFilterFromQuery(c *gin.Context) repositories.RoomFilter {
	filter := repositories.RoomFilter{RoomType: c.Query("room_type")}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil && v > 0 {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil && v > 0 {
		filter.MaxPrice = v
	}
	if v, err := strconv.Atoi(c.Query("capacity")); err == nil && v > 0 {
		filter.Capacity = v
	}
	if v, err := strconv.ParseBool(c.Query("available_only")); err == nil {
		filter.AvailableOnly = v
	}
	return filter
}

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List(roomFilterFromQuery(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.Get(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctrl.RoomSvc.Create(services.RoomInput{
		RoomNumber:    payload.RoomNumber,
		RoomType:      payload.RoomType,
		PricePerNight: payload.PricePerNight,
		Capacity:      payload.Capacity,
		Description:   payload.Description,
		Floor:         payload.Floor,
		ImageURL:      payload.ImageURL,
		Amenities:     payload.Amenities,
		IsAvailable:   payload.IsAvailable,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var patch models.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}
	room, err := ctrl.RoomSvc.Update(id, patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetRoomOffers lists what a guest could add to a stay in this room.
func (ctrl *RoomController) GetRoomOffers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offers, err := ctrl.RoomSvc.AssignableOffers(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offers)
}

func (ctrl *RoomController) AssignOffer(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offerID, ok := parseIDParam(c, "offerId")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.AssignOffer(roomID, offerID); err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room_id": roomID, "offer_id": offerID})
}

func (ctrl *RoomController) UnassignOffer(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offerID, ok := parseIDParam(c, "offerId")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.UnassignOffer(roomID, offerID); err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room_id": roomID, "offer_id": offerID})
}
