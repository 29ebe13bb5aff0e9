package services

import (
	"gorm.io/datatypes"

	"stayhub-backend/domain"
	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

type RoomService struct {
	Rooms  *repositories.RoomRepository
	Offers *repositories.OfferRepository
}

func NewRoomService(rooms *repositories.RoomRepository, offers *repositories.OfferRepository) *RoomService {
	return &RoomService{Rooms: rooms, Offers: offers}
}

type RoomInput struct {
	RoomNumber    string
	RoomType      string
	PricePerNight float64
	Capacity      int
	Description   string
	Floor         int
	ImageURL      string
	Amenities     datatypes.JSON
	IsAvailable   *bool
}

func (s *RoomService) List(filter repositories.RoomFilter) ([]models.Room, error) {
	return s.Rooms.List(filter)
}

func (s *RoomService) Get(id uint) (models.Room, error) {
	return s.Rooms.GetByID(id)
}

func (s *RoomService) Create(in RoomInput) (models.Room, error) {
	if err := validateRoomBasics(in.RoomNumber, in.PricePerNight, in.Capacity); err != nil {
		return models.Room{}, err
	}
	room := models.Room{
		RoomNumber:    in.RoomNumber,
		RoomType:      in.RoomType,
		PricePerNight: in.PricePerNight,
		Capacity:      in.Capacity,
		Description:   in.Description,
		Floor:         in.Floor,
		ImageURL:      in.ImageURL,
		Amenities:     in.Amenities,
		IsAvailable:   true,
	}
	if in.IsAvailable != nil {
		room.IsAvailable = *in.IsAvailable
	}
	if err := s.Rooms.Create(&room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Update(id uint, patch models.RoomPatch) (models.Room, error) {
	room, err := s.Rooms.GetByID(id)
	if err != nil {
		return models.Room{}, err
	}
	room = patch.Apply(room)
	if err := validateRoomBasics(room.RoomNumber, room.PricePerNight, room.Capacity); err != nil {
		return models.Room{}, err
	}
	if err := s.Rooms.Save(&room); err != nil {
		return models.Room{}, err
	}
	return s.Rooms.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	if _, err := s.Rooms.GetByID(id); err != nil {
		return err
	}
	return s.Rooms.Delete(id)
}

// AssignableOffers lists what a guest could select for the room:
// active global offers plus the room's active assigned offers.
func (s *RoomService) AssignableOffers(roomID uint) ([]models.Offer, error) {
	if _, err := s.Rooms.GetByID(roomID); err != nil {
		return nil, err
	}
	return s.Rooms.AssignableOffers(roomID)
}

// AssignOffer attaches a room-specific offer to the room. Global
// offers already apply everywhere and cannot be assigned.
func (s *RoomService) AssignOffer(roomID, offerID uint) error {
	if _, err := s.Rooms.GetByID(roomID); err != nil {
		return err
	}
	offer, err := s.Offers.GetByID(offerID)
	if err != nil {
		return err
	}
	if offer.OfferType != models.OfferTypeRoomSpecific {
		return domain.InvalidOfferError{OfferID: offerID, Msg: "global offers apply to all rooms"}
	}
	if !offer.IsActive {
		return domain.InvalidOfferError{OfferID: offerID, Msg: "not active"}
	}
	return s.Rooms.AssignOffer(roomID, offerID)
}

func (s *RoomService) UnassignOffer(roomID, offerID uint) error {
	if _, err := s.Rooms.GetByID(roomID); err != nil {
		return err
	}
	return s.Rooms.UnassignOffer(roomID, offerID)
}

func validateRoomBasics(roomNumber string, price float64, capacity int) error {
	if roomNumber == "" {
		return domain.ValidationError{Field: "room_number", Msg: "required"}
	}
	if price <= 0 {
		return domain.ValidationError{Field: "price_per_night", Msg: "must be positive"}
	}
	if capacity <= 0 {
		return domain.ValidationError{Field: "capacity", Msg: "must be positive"}
	}
	return nil
}
