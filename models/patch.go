package models

import (
	"time"

	"gorm.io/datatypes"
)

// Patch structs carry partial updates: only non-nil fields are applied.
// Apply merges onto a copy of the existing entity and reports what
// changed so callers can re-run the checks that depend on it.

type RoomPatch struct {
	RoomNumber    *string         `json:"room_number" binding:"omitempty,min=1"`
	RoomType      *string         `json:"room_type"`
	PricePerNight *float64        `json:"price_per_night" binding:"omitempty,gt=0"`
	Capacity      *int            `json:"capacity" binding:"omitempty,gt=0"`
	Description   *string         `json:"description"`
	Floor         *int            `json:"floor"`
	ImageURL      *string         `json:"image_url"`
	Amenities     *datatypes.JSON `json:"amenities"`
	IsAvailable   *bool           `json:"is_available"`
}

func (p RoomPatch) Apply(room Room) Room {
	if p.RoomNumber != nil {
		room.RoomNumber = *p.RoomNumber
	}
	if p.RoomType != nil {
		room.RoomType = *p.RoomType
	}
	if p.PricePerNight != nil {
		room.PricePerNight = *p.PricePerNight
	}
	if p.Capacity != nil {
		room.Capacity = *p.Capacity
	}
	if p.Description != nil {
		room.Description = *p.Description
	}
	if p.Floor != nil {
		room.Floor = *p.Floor
	}
	if p.ImageURL != nil {
		room.ImageURL = *p.ImageURL
	}
	if p.Amenities != nil {
		room.Amenities = *p.Amenities
	}
	if p.IsAvailable != nil {
		room.IsAvailable = *p.IsAvailable
	}
	return room
}

type OfferPatch struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	OfferType   *string  `json:"offer_type" binding:"omitempty,oneof=global room_specific"`
	IsActive    *bool    `json:"is_active"`
}

func (p OfferPatch) Apply(offer Offer) Offer {
	if p.Name != nil {
		offer.Name = *p.Name
	}
	if p.Description != nil {
		offer.Description = *p.Description
	}
	if p.Price != nil {
		offer.Price = *p.Price
	}
	if p.OfferType != nil {
		offer.OfferType = *p.OfferType
	}
	if p.IsActive != nil {
		offer.IsActive = *p.IsActive
	}
	return offer
}

type UserPatch struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=user manager admin"`
	IsActive *bool   `json:"is_active"`
}

// Apply merges everything except Password, which needs hashing and is
// handled by the user service.
func (p UserPatch) Apply(user User) User {
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.FullName != nil {
		user.FullName = *p.FullName
	}
	if p.Role != nil {
		user.Role = *p.Role
	}
	if p.IsActive != nil {
		user.IsActive = *p.IsActive
	}
	return user
}

type BookingPatch struct {
	CheckIn         *time.Time `json:"check_in"`
	CheckOut        *time.Time `json:"check_out"`
	GuestsCount     *int       `json:"guests_count" binding:"omitempty,gt=0"`
	SpecialRequests *string    `json:"special_requests"`
	Status          *string    `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	OfferIDs        *[]uint    `json:"offer_ids"`
}

// BookingChanges records which validated aspects a patch touched.
type BookingChanges struct {
	Dates  bool
	Guests bool
	Status bool
	Offers bool
}

func (p BookingPatch) Apply(b Booking) (Booking, BookingChanges) {
	var ch BookingChanges
	if p.CheckIn != nil {
		ch.Dates = ch.Dates || !p.CheckIn.Equal(b.CheckIn)
		b.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		ch.Dates = ch.Dates || !p.CheckOut.Equal(b.CheckOut)
		b.CheckOut = *p.CheckOut
	}
	if p.GuestsCount != nil {
		ch.Guests = *p.GuestsCount != b.GuestsCount
		b.GuestsCount = *p.GuestsCount
	}
	if p.SpecialRequests != nil {
		b.SpecialRequests = *p.SpecialRequests
	}
	if p.Status != nil {
		ch.Status = *p.Status != b.Status
		b.Status = *p.Status
	}
	if p.OfferIDs != nil {
		ch.Offers = true
	}
	return b, ch
}
