package models

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// ActiveBookingStatuses are the statuses that block overlapping date
// ranges on a room. Cancelled bookings never block.
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
}

type Booking struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ReferenceCode   string    `gorm:"column:reference_code;uniqueIndex;size:20" json:"reference_code"`
	UserID          uint      `gorm:"index" json:"user_id"`
	RoomID          uint      `gorm:"index" json:"room_id"`
	CheckIn         time.Time `gorm:"column:check_in;index" json:"check_in"`
	CheckOut        time.Time `gorm:"column:check_out" json:"check_out"`
	GuestsCount     int       `gorm:"column:guests_count" json:"guests_count"`
	TotalPrice      float64   `gorm:"column:total_price" json:"total_price"`
	Status          string    `gorm:"size:20;index;default:pending" json:"status"`
	SpecialRequests string    `gorm:"column:special_requests;type:text" json:"special_requests"`

	User           User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room           Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	SelectedOffers []Offer `gorm:"many2many:booking_offers" json:"selected_offers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Blocking reports whether the booking occupies its date range for
// overlap purposes.
func (b Booking) Blocking() bool {
	return b.Status != BookingStatusCancelled
}

// OfferTotal sums the prices of the booking's selected offers.
func (b Booking) OfferTotal() float64 {
	var sum float64
	for _, o := range b.SelectedOffers {
		sum += o.Price
	}
	return sum
}
