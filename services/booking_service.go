package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayhub-backend/domain"
	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

// BookingService orchestrates the booking lifecycle. Every mutation
// runs in one transaction that locks the room row before the overlap
// check, so concurrent writes on the same room serialize instead of
// racing the check-then-act window.
type BookingService struct {
	DB      *gorm.DB
	Pricing domain.PricingStrategy
	Now     func() time.Time
}

func NewBookingService(db *gorm.DB, pricing domain.PricingStrategy) *BookingService {
	return &BookingService{DB: db, Pricing: pricing, Now: time.Now}
}

type BookingInput struct {
	RoomID          uint
	CheckIn         time.Time
	CheckOut        time.Time
	GuestsCount     int
	SpecialRequests string
	OfferIDs        []uint
}

type QuoteInput struct {
	RoomID   uint
	CheckIn  time.Time
	CheckOut time.Time
	OfferIDs []uint
}

type Quote struct {
	RoomID      uint    `json:"room_id"`
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightly_rate"`
	OffersTotal float64 `json:"offers_total"`
	TotalPrice  float64 `json:"total_price"`
}

// Create books a room for the user. Validation order: room exists,
// room available, capacity, date range, overlap, offer selection.
func (s *BookingService) Create(userID uint, in BookingInput) (models.Booking, error) {
	var created models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		rooms := repositories.NewRoomRepository(tx)
		bookings := repositories.NewBookingRepository(tx)
		offers := repositories.NewOfferRepository(tx)

		room, err := rooms.GetForUpdate(in.RoomID)
		if err != nil {
			return err
		}
		if !room.IsAvailable {
			return domain.UnavailableError{Resource: "room"}
		}
		if in.GuestsCount <= 0 {
			return domain.ValidationError{Field: "guests_count", Msg: "must be positive"}
		}
		if in.GuestsCount > room.Capacity {
			return domain.CapacityExceededError{Guests: in.GuestsCount, Capacity: room.Capacity}
		}
		nights := domain.Nights(in.CheckIn, in.CheckOut)
		if nights <= 0 {
			return domain.InvalidRangeError{Msg: "checkout must be after check-in"}
		}
		overlapping, err := bookings.CountOverlapping(in.RoomID, in.CheckIn, in.CheckOut, 0)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return domain.ConflictError{Resource: "booking", Msg: "room is already booked for the selected dates"}
		}
		selection, err := resolveOfferSelection(offers, room, in.OfferIDs)
		if err != nil {
			return err
		}
		total, err := s.Pricing.Total(nights, room.PricePerNight, offerPrices(selection))
		if err != nil {
			return err
		}

		booking := models.Booking{
			ReferenceCode:   newReferenceCode(),
			UserID:          userID,
			RoomID:          in.RoomID,
			CheckIn:         in.CheckIn,
			CheckOut:        in.CheckOut,
			GuestsCount:     in.GuestsCount,
			TotalPrice:      total,
			Status:          models.BookingStatusPending,
			SpecialRequests: in.SpecialRequests,
		}
		if err := bookings.Create(&booking); err != nil {
			return err
		}
		if len(selection) > 0 {
			if err := bookings.ReplaceOffers(booking.ID, selection); err != nil {
				return err
			}
		}
		created = booking
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return s.fetch(created.ID)
}

// Update applies a partial update. Dates are re-checked for overlap
// excluding the booking itself; a supplied offer selection is
// re-validated and replaced. The total is recomputed whenever dates or
// offers change. A transition into completed awards bonus points to
// the owner.
func (s *BookingService) Update(bookingID uint, patch models.BookingPatch, actor models.User) (models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		bookings := repositories.NewBookingRepository(tx)
		rooms := repositories.NewRoomRepository(tx)
		offers := repositories.NewOfferRepository(tx)

		booking, err := bookings.GetByID(bookingID)
		if err != nil {
			return err
		}
		if !actor.IsPrivileged() && booking.UserID != actor.ID {
			return domain.ForbiddenError{Msg: "you may only modify your own bookings"}
		}

		updated, changes := patch.Apply(booking)

		room, err := rooms.GetForUpdate(updated.RoomID)
		if err != nil {
			return err
		}
		if changes.Guests {
			if updated.GuestsCount <= 0 {
				return domain.ValidationError{Field: "guests_count", Msg: "must be positive"}
			}
			if updated.GuestsCount > room.Capacity {
				return domain.CapacityExceededError{Guests: updated.GuestsCount, Capacity: room.Capacity}
			}
		}
		nights := domain.Nights(updated.CheckIn, updated.CheckOut)
		if changes.Dates {
			if nights <= 0 {
				return domain.InvalidRangeError{Msg: "checkout must be after check-in"}
			}
			overlapping, err := bookings.CountOverlapping(updated.RoomID, updated.CheckIn, updated.CheckOut, booking.ID)
			if err != nil {
				return err
			}
			if overlapping > 0 {
				return domain.ConflictError{Resource: "booking", Msg: "room is already booked for the selected dates"}
			}
		}

		selection := updated.SelectedOffers
		if patch.OfferIDs != nil {
			selection, err = resolveOfferSelection(offers, room, *patch.OfferIDs)
			if err != nil {
				return err
			}
		}

		total := updated.TotalPrice
		if changes.Dates || changes.Offers {
			total, err = s.Pricing.Total(nights, room.PricePerNight, offerPrices(selection))
			if err != nil {
				return err
			}
		}

		fields := map[string]interface{}{
			"check_in":         updated.CheckIn,
			"check_out":        updated.CheckOut,
			"guests_count":     updated.GuestsCount,
			"special_requests": updated.SpecialRequests,
			"status":           updated.Status,
			"total_price":      total,
		}
		if err := bookings.UpdateFields(booking.ID, fields); err != nil {
			return err
		}
		if patch.OfferIDs != nil {
			if err := bookings.ReplaceOffers(booking.ID, selection); err != nil {
				return err
			}
		}

		if changes.Status && updated.Status == models.BookingStatusCompleted {
			users := repositories.NewUserRepository(tx)
			if err := users.AddBonusPoints(booking.UserID, bonusPoints(total)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return s.fetch(bookingID)
}

// Cancel sets the booking to cancelled. Cancelling an already
// cancelled booking is an idempotent no-op; a completed stay cannot be
// cancelled.
func (s *BookingService) Cancel(bookingID uint, actor models.User) (models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		bookings := repositories.NewBookingRepository(tx)

		booking, err := bookings.GetByID(bookingID)
		if err != nil {
			return err
		}
		if !actor.IsPrivileged() && booking.UserID != actor.ID {
			return domain.ForbiddenError{Msg: "you may only cancel your own bookings"}
		}
		switch booking.Status {
		case models.BookingStatusCancelled:
			return nil
		case models.BookingStatusCompleted:
			return domain.InvalidStateError{Status: booking.Status, Op: "cancel"}
		}
		return bookings.UpdateFields(booking.ID, map[string]interface{}{
			"status": models.BookingStatusCancelled,
		})
	})
	if err != nil {
		return models.Booking{}, err
	}
	return s.fetch(bookingID)
}

// Extend pushes the checkout forward by extraDays, keeping the
// already-selected offers at their recorded prices.
func (s *BookingService) Extend(bookingID uint, extraDays int, actor models.User) (models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		bookings := repositories.NewBookingRepository(tx)
		rooms := repositories.NewRoomRepository(tx)

		booking, err := bookings.GetByID(bookingID)
		if err != nil {
			return err
		}
		if !actor.IsPrivileged() && booking.UserID != actor.ID {
			return domain.ForbiddenError{Msg: "you may only extend your own bookings"}
		}
		if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
			return domain.InvalidStateError{Status: booking.Status, Op: "extend"}
		}
		if extraDays <= 0 {
			return domain.InvalidRangeError{Msg: "extension must add at least one day"}
		}

		room, err := rooms.GetForUpdate(booking.RoomID)
		if err != nil {
			return err
		}
		newCheckOut := booking.CheckOut.AddDate(0, 0, extraDays)
		overlapping, err := bookings.CountOverlapping(booking.RoomID, booking.CheckIn, newCheckOut, booking.ID)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return domain.ConflictError{Resource: "booking", Msg: "room is already booked for the extended dates"}
		}

		nights := domain.Nights(booking.CheckIn, newCheckOut)
		total, err := s.Pricing.Total(nights, room.PricePerNight, offerPrices(booking.SelectedOffers))
		if err != nil {
			return err
		}
		return bookings.UpdateFields(booking.ID, map[string]interface{}{
			"check_out":   newCheckOut,
			"total_price": total,
		})
	})
	if err != nil {
		return models.Booking{}, err
	}
	return s.fetch(bookingID)
}

// Delete removes the booking entirely. Route-level RBAC restricts this
// to privileged roles.
func (s *BookingService) Delete(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return repositories.NewBookingRepository(tx).Delete(bookingID)
	})
}

// GetByID returns a fully-loaded booking, enforcing ownership for
// non-privileged actors.
func (s *BookingService) GetByID(bookingID uint, actor models.User) (models.Booking, error) {
	booking, err := s.fetch(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if !actor.IsPrivileged() && booking.UserID != actor.ID {
		return models.Booking{}, domain.ForbiddenError{Msg: "you may only view your own bookings"}
	}
	return booking, nil
}

func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	return repositories.NewBookingRepository(s.DB).ListForUser(userID)
}

func (s *BookingService) ListAll(filter repositories.BookingFilter) ([]models.Booking, error) {
	return repositories.NewBookingRepository(s.DB).ListAll(filter)
}

// BookedDates returns the room's blocking intervals from today onward,
// for availability calendars.
func (s *BookingService) BookedDates(roomID uint) ([]repositories.BookedRange, error) {
	if _, err := repositories.NewRoomRepository(s.DB).GetByID(roomID); err != nil {
		return nil, err
	}
	return repositories.NewBookingRepository(s.DB).BookedRanges(roomID, s.Now())
}

// QuotePrice previews the total for a stay without persisting
// anything.
func (s *BookingService) QuotePrice(in QuoteInput) (Quote, error) {
	rooms := repositories.NewRoomRepository(s.DB)
	offers := repositories.NewOfferRepository(s.DB)

	room, err := rooms.GetByID(in.RoomID)
	if err != nil {
		return Quote{}, err
	}
	nights := domain.Nights(in.CheckIn, in.CheckOut)
	if nights <= 0 {
		return Quote{}, domain.InvalidRangeError{Msg: "checkout must be after check-in"}
	}
	selection, err := resolveOfferSelection(offers, room, in.OfferIDs)
	if err != nil {
		return Quote{}, err
	}
	total, err := s.Pricing.Total(nights, room.PricePerNight, offerPrices(selection))
	if err != nil {
		return Quote{}, err
	}
	var offersTotal float64
	for _, p := range offerPrices(selection) {
		offersTotal += p
	}
	return Quote{
		RoomID:      room.ID,
		Nights:      nights,
		NightlyRate: room.PricePerNight,
		OffersTotal: offersTotal,
		TotalPrice:  total,
	}, nil
}

func (s *BookingService) fetch(bookingID uint) (models.Booking, error) {
	return repositories.NewBookingRepository(s.DB).GetByID(bookingID)
}

// resolveOfferSelection validates requested offer ids against the
// room: each must exist, be active, and be assignable (global, or
// room-specific and assigned to this room). Duplicate ids collapse.
func resolveOfferSelection(repo *repositories.OfferRepository, room models.Room, offerIDs []uint) ([]models.Offer, error) {
	if len(offerIDs) == 0 {
		return nil, nil
	}
	seen := make(map[uint]bool, len(offerIDs))
	unique := make([]uint, 0, len(offerIDs))
	for _, id := range offerIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	found, err := repo.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Offer, len(found))
	for _, o := range found {
		byID[o.ID] = o
	}

	selection := make([]models.Offer, 0, len(unique))
	for _, id := range unique {
		offer, ok := byID[id]
		if !ok {
			return nil, domain.InvalidOfferError{OfferID: id, Msg: "not found"}
		}
		if !offer.IsActive {
			return nil, domain.InvalidOfferError{OfferID: id, Msg: "not active"}
		}
		if !offer.AssignableTo(room) {
			return nil, domain.InvalidOfferError{OfferID: id, Msg: "not assignable to this room"}
		}
		selection = append(selection, offer)
	}
	return selection, nil
}

func offerPrices(offers []models.Offer) []float64 {
	prices := make([]float64, 0, len(offers))
	for _, o := range offers {
		prices = append(prices, o.Price)
	}
	return prices
}

// bonusPoints is one point per ten currency units of the final total.
func bonusPoints(total float64) int {
	return int(total / 10)
}

func newReferenceCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "BK-" + strings.ToUpper(raw[:10])
}
