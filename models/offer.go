package models

import "time"

const (
	OfferTypeGlobal       = "global"
	OfferTypeRoomSpecific = "room_specific"
)

type Offer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:150" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"`
	OfferType   string    `gorm:"column:offer_type;size:20;default:global" json:"offer_type"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidOfferType(t string) bool {
	return t == OfferTypeGlobal || t == OfferTypeRoomSpecific
}

// AssignableTo reports whether the offer may be selected for the given
// room: global offers always, room-specific offers only when the room's
// assigned set contains them.
func (o Offer) AssignableTo(room Room) bool {
	if o.OfferType == OfferTypeGlobal {
		return true
	}
	for _, assigned := range room.AssignableOffers {
		if assigned.ID == o.ID {
			return true
		}
	}
	return false
}
