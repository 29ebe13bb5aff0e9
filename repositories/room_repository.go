package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayhub-backend/domain"
	"stayhub-backend/models"
)

// RoomFilter narrows List results. Zero values mean "no constraint".
type RoomFilter struct {
	RoomType      string
	MinPrice      float64
	MaxPrice      float64
	Capacity      int
	AvailableOnly bool
}

type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) WithTx(tx *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: tx}
}

func (r *RoomRepository) Create(room *models.Room) error {
	return translateDBError(r.DB.Omit(clause.Associations).Create(room).Error, "room")
}

// GetByID returns the room with its assigned offer set loaded.
func (r *RoomRepository) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := r.DB.Preload("AssignableOffers").First(&room, id).Error
	return room, translateDBError(err, "room")
}

// GetForUpdate locks the room row for the rest of the transaction and
// loads its assigned offers. Booking mutations go through this so
// concurrent writes on one room serialize before the overlap check.
func (r *RoomRepository) GetForUpdate(id uint) (models.Room, error) {
	var room models.Room
	err := r.DB.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error
	if err != nil {
		return room, translateDBError(err, "room")
	}
	err = r.DB.Model(&room).Association("AssignableOffers").Find(&room.AssignableOffers)
	return room, translateDBError(err, "room")
}

func (r *RoomRepository) List(filter RoomFilter) ([]models.Room, error) {
	q := r.DB.Preload("AssignableOffers").Order("room_number")
	if filter.RoomType != "" {
		q = q.Where("room_type = ?", filter.RoomType)
	}
	if filter.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", filter.MaxPrice)
	}
	if filter.Capacity > 0 {
		q = q.Where("capacity >= ?", filter.Capacity)
	}
	if filter.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	var rooms []models.Room
	err := q.Find(&rooms).Error
	return rooms, translateDBError(err, "room")
}

func (r *RoomRepository) Save(room *models.Room) error {
	return translateDBError(r.DB.Omit(clause.Associations).Save(room).Error, "room")
}

func (r *RoomRepository) Delete(id uint) error {
	res := r.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return translateDBError(res.Error, "room")
	}
	if res.RowsAffected == 0 {
		return translateDBError(gorm.ErrRecordNotFound, "room")
	}
	return nil
}

// AssignOffer adds a room-specific offer to the room's assignable set.
func (r *RoomRepository) AssignOffer(roomID, offerID uint) error {
	err := r.DB.Exec(
		"INSERT INTO room_offers (room_id, offer_id) VALUES (?, ?)",
		roomID, offerID,
	).Error
	return translateDBError(err, "room offer")
}

func (r *RoomRepository) UnassignOffer(roomID, offerID uint) error {
	res := r.DB.Exec(
		"DELETE FROM room_offers WHERE room_id = ? AND offer_id = ?",
		roomID, offerID,
	)
	if res.Error != nil {
		return translateDBError(res.Error, "room offer")
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "room offer"}
	}
	return nil
}

// AssignableOffers returns the selectable set for a room: every active
// global offer plus the room's active assigned offers.
func (r *RoomRepository) AssignableOffers(roomID uint) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.DB.
		Where("offer_type = ? AND is_active = ?", models.OfferTypeGlobal, true).
		Order("id").
		Find(&offers).Error
	if err != nil {
		return nil, translateDBError(err, "offer")
	}
	var assigned []models.Offer
	err = r.DB.
		Joins("JOIN room_offers ro ON ro.offer_id = offers.id").
		Where("ro.room_id = ? AND offers.is_active = ?", roomID, true).
		Order("offers.id").
		Find(&assigned).Error
	if err != nil {
		return nil, translateDBError(err, "offer")
	}
	return append(offers, assigned...), nil
}
