package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayhub-backend/models"
)

// BookingFilter narrows ListAll results. Zero values mean "no
// constraint".
type BookingFilter struct {
	Status string
	RoomID uint
}

// BookedRange is one occupied [check_in, check_out) interval, as
// exposed to availability calendars.
type BookedRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) WithTx(tx *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: tx}
}

func (r *BookingRepository) Create(booking *models.Booking) error {
	return translateDBError(r.DB.Omit(clause.Associations).Create(booking).Error, "booking")
}

// GetByID returns the booking fully populated: owner, room, and
// selected offers.
func (r *BookingRepository) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := r.DB.
		Preload("User").
		Preload("Room").
		Preload("SelectedOffers").
		First(&booking, id).Error
	return booking, translateDBError(err, "booking")
}

func (r *BookingRepository) ListForUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.DB.
		Preload("Room").
		Preload("SelectedOffers").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, translateDBError(err, "booking")
}

func (r *BookingRepository) ListAll(filter BookingFilter) ([]models.Booking, error) {
	q := r.DB.
		Preload("User").
		Preload("Room").
		Preload("SelectedOffers").
		Order("created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RoomID != 0 {
		q = q.Where("room_id = ?", filter.RoomID)
	}
	var bookings []models.Booking
	err := q.Find(&bookings).Error
	return bookings, translateDBError(err, "booking")
}

// CountOverlapping counts blocking bookings on the room whose
// [check_in, check_out) interval overlaps [start, end). A booking
// overlaps iff its check_in < end AND its check_out > start (half-open
// semantics). excludeID, when non-zero, removes one booking from the
// conflict set so updates do not conflict with themselves.
func (r *BookingRepository) CountOverlapping(roomID uint, start, end time.Time, excludeID uint) (int64, error) {
	q := r.DB.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", models.ActiveBookingStatuses).
		Where("check_in < ? AND check_out > ?", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	err := q.Count(&n).Error
	return n, translateDBError(err, "booking")
}

// BookedRanges returns the blocking intervals for a room that end
// after the given instant, soonest first.
func (r *BookingRepository) BookedRanges(roomID uint, from time.Time) ([]BookedRange, error) {
	var ranges []BookedRange
	err := r.DB.Model(&models.Booking{}).
		Select("check_in", "check_out").
		Where("room_id = ?", roomID).
		Where("status IN ?", models.ActiveBookingStatuses).
		Where("check_out > ?", from).
		Order("check_in").
		Scan(&ranges).Error
	return ranges, translateDBError(err, "booking")
}

// UpdateFields writes the given columns on one booking row.
func (r *BookingRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	err := r.DB.Model(&models.Booking{}).Where("id = ?", id).Updates(fields).Error
	return translateDBError(err, "booking")
}

// ReplaceOffers rewrites the booking's selected-offer join rows.
func (r *BookingRepository) ReplaceOffers(bookingID uint, offers []models.Offer) error {
	err := r.DB.Exec("DELETE FROM booking_offers WHERE booking_id = ?", bookingID).Error
	if err != nil {
		return translateDBError(err, "booking offer")
	}
	for _, offer := range offers {
		err := r.DB.Exec(
			"INSERT INTO booking_offers (booking_id, offer_id) VALUES (?, ?)",
			bookingID, offer.ID,
		).Error
		if err != nil {
			return translateDBError(err, "booking offer")
		}
	}
	return nil
}

// Delete removes the booking and its offer join rows.
func (r *BookingRepository) Delete(id uint) error {
	err := r.DB.Exec("DELETE FROM booking_offers WHERE booking_id = ?", id).Error
	if err != nil {
		return translateDBError(err, "booking")
	}
	res := r.DB.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return translateDBError(res.Error, "booking")
	}
	if res.RowsAffected == 0 {
		return translateDBError(gorm.ErrRecordNotFound, "booking")
	}
	return nil
}
