package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	RoomNumber    string         `gorm:"column:room_number;uniqueIndex;size:50" json:"room_number"`
	RoomType      string         `gorm:"column:room_type;size:50;index" json:"room_type"`
	PricePerNight float64        `gorm:"column:price_per_night" json:"price_per_night"`
	Capacity      int            `json:"capacity"`
	Description   string         `gorm:"type:text" json:"description"`
	Floor         int            `json:"floor"`
	ImageURL      string         `gorm:"column:image_url;size:500" json:"image_url"`
	Amenities     datatypes.JSON `json:"amenities,omitempty"`
	IsAvailable   bool           `json:"is_available"`

	// Room-specific offers explicitly assigned to this room. Global offers
	// apply to every room and are not stored in the join table.
	AssignableOffers []Offer `gorm:"many2many:room_offers" json:"assignable_offers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
