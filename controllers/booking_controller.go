package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub-backend/domain"
	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/repositories"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type BookingPayload struct {
	RoomID          uint   `json:"room_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	GuestsCount     int    `json:"guests_count" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests"`
	OfferIDs        []uint `json:"offer_ids"`
}

type QuotePayload struct {
	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	OfferIDs []uint `json:"offer_ids"`
}

// BookingUpdatePayload mirrors models.BookingPatch with string dates so
// clients can send plain YYYY-MM-DD.
type BookingUpdatePayload struct {
	CheckIn         *string `json:"check_in"`
	CheckOut        *string `json:"check_out"`
	GuestsCount     *int    `json:"guests_count" binding:"omitempty,gt=0"`
	SpecialRequests *string `json:"special_requests"`
	Status          *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	OfferIDs        *[]uint `json:"offer_ids"`
}

type ExtendPayload struct {
	ExtraDays int `json:"extra_days" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
	InvoiceSvc *services.InvoiceService
}

func NewBookingController(bookingSvc *services.BookingService, invoiceSvc *services.InvoiceService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, InvoiceSvc: invoiceSvc}
}

// parseDate accepts YYYY-MM-DD or RFC3339.
func parseDate(field, raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ValidationError{Field: field, Msg: "must be YYYY-MM-DD"}
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	checkIn, err := parseDate("check_in", payload.CheckIn)
	if err != nil {
		RespondError(c, err)
		return
	}
	checkOut, err := parseDate("check_out", payload.CheckOut)
	if err != nil {
		RespondError(c, err)
		return
	}

	booking, err := ctrl.BookingSvc.Create(middleware.CurrentUser(c).ID, services.BookingInput{
		RoomID:          payload.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestsCount:     payload.GuestsCount,
		SpecialRequests: payload.SpecialRequests,
		OfferIDs:        payload.OfferIDs,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// QuoteBooking prices a stay without persisting anything.
func (ctrl *BookingController) QuoteBooking(c *gin.Context) {
	var payload QuotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	checkIn, err := parseDate("check_in", payload.CheckIn)
	if err != nil {
		RespondError(c, err)
		return
	}
	checkOut, err := parseDate("check_out", payload.CheckOut)
	if err != nil {
		RespondError(c, err)
		return
	}

	quote, err := ctrl.BookingSvc.QuotePrice(services.QuoteInput{
		RoomID:   payload.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		OfferIDs: payload.OfferIDs,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}

func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListForUser(middleware.CurrentUser(c).ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	filter := repositories.BookingFilter{Status: c.Query("status")}
	if v, err := strconv.ParseUint(c.Query("room_id"), 10, 32); err == nil && v > 0 {
		filter.RoomID = uint(v)
	}
	bookings, err := ctrl.BookingSvc.ListAll(filter)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id, middleware.CurrentUser(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload BookingUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	patch := models.BookingPatch{
		GuestsCount:     payload.GuestsCount,
		SpecialRequests: payload.SpecialRequests,
		Status:          payload.Status,
		OfferIDs:        payload.OfferIDs,
	}
	if payload.CheckIn != nil {
		t, err := parseDate("check_in", *payload.CheckIn)
		if err != nil {
			RespondError(c, err)
			return
		}
		patch.CheckIn = &t
	}
	if payload.CheckOut != nil {
		t, err := parseDate("check_out", *payload.CheckOut)
		if err != nil {
			RespondError(c, err)
			return
		}
		patch.CheckOut = &t
	}

	booking, err := ctrl.BookingSvc.Update(id, patch, middleware.CurrentUser(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.Cancel(id, middleware.CurrentUser(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) ExtendBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload ExtendPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	booking, err := ctrl.BookingSvc.Extend(id, payload.ExtraDays, middleware.CurrentUser(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetBookedDates exposes a room's occupied ranges for availability
// calendars. Public within the authenticated API; no ownership needed.
func (ctrl *BookingController) GetBookedDates(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}
	ranges, err := ctrl.BookingSvc.BookedDates(roomID)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ranges)
}

// DownloadInvoice streams the booking invoice as a PDF attachment.
// Ownership is checked through the booking load before rendering.
func (ctrl *BookingController) DownloadInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := ctrl.BookingSvc.GetByID(id, middleware.CurrentUser(c)); err != nil {
		RespondError(c, err)
		return
	}

	pdf, filename, err := ctrl.InvoiceSvc.GenerateInvoice(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
