package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type OfferPayload struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	OfferType   string  `json:"offer_type" binding:"required,oneof=global room_specific"`
	IsActive    *bool   `json:"is_active"`
}

type OfferController struct {
	OfferSvc *services.OfferService
}

func NewOfferController(svc *services.OfferService) *OfferController {
	return &OfferController{OfferSvc: svc}
}

func (ctrl *OfferController) GetOffers(c *gin.Context) {
	offers, err := ctrl.OfferSvc.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offers)
}

func (ctrl *OfferController) GetActiveOffers(c *gin.Context) {
	offers, err := ctrl.OfferSvc.ListActive()
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offers)
}

func (ctrl *OfferController) GetGlobalOffers(c *gin.Context) {
	offers, err := ctrl.OfferSvc.ListGlobal()
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offers)
}

func (ctrl *OfferController) GetOfferByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offer, err := ctrl.OfferSvc.Get(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offer)
}

func (ctrl *OfferController) CreateOffer(c *gin.Context) {
	var payload OfferPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	offer, err := ctrl.OfferSvc.Create(services.OfferInput{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		OfferType:   payload.OfferType,
		IsActive:    payload.IsActive,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, offer)
}

func (ctrl *OfferController) UpdateOffer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var patch models.OfferPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}
	offer, err := ctrl.OfferSvc.Update(id, patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offer)
}

func (ctrl *OfferController) DeleteOffer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.OfferSvc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
