package config

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayhub-backend/models"
)

// SeedDatabase fills an empty database with a usable catalog: staff and
// demo accounts, rooms across the three tiers, and the offer list.
// Every section is guarded by a count so restarts never duplicate data.
func SeedDatabase(db *gorm.DB, settings Settings) error {
	// ---------------- Users ----------------
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		accounts := []struct {
			username, email, fullName, role, password string
		}{
			{"admin", "admin@stayhub.local", "Administrator", models.RoleAdmin, "admin123"},
			{"manager", "manager@stayhub.local", "Hotel Manager", models.RoleManager, "manager123"},
			{"guest", "guest@stayhub.local", "Demo Guest", models.RoleUser, "guest123"},
		}
		for _, a := range accounts {
			hash, err := bcrypt.GenerateFromPassword([]byte(a.password), settings.BcryptCost)
			if err != nil {
				return err
			}
			user := models.User{
				Username:     a.username,
				Email:        a.email,
				FullName:     a.fullName,
				Role:         a.role,
				PasswordHash: string(hash),
				IsActive:     true,
			}
			if err := db.Create(&user).Error; err != nil {
				return err
			}
		}
		log.Println("Default accounts seeded (change the passwords before going live)")
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", RoomType: "standard", PricePerNight: 100, Capacity: 2, Floor: 1,
				Description: "Cozy standard room with a city view",
				Amenities:   datatypes.JSON([]byte(`["wifi","tv","air_conditioning"]`))},
			{RoomNumber: "102", RoomType: "standard", PricePerNight: 100, Capacity: 2, Floor: 1,
				Description: "Standard room near the elevator",
				Amenities:   datatypes.JSON([]byte(`["wifi","tv","air_conditioning"]`))},
			{RoomNumber: "103", RoomType: "standard", PricePerNight: 110, Capacity: 3, Floor: 1,
				Description: "Standard triple with garden view",
				Amenities:   datatypes.JSON([]byte(`["wifi","tv","air_conditioning","minibar"]`))},
			{RoomNumber: "201", RoomType: "deluxe", PricePerNight: 180, Capacity: 3, Floor: 2,
				Description: "Deluxe room with balcony",
				Amenities:   datatypes.JSON([]byte(`["wifi","tv","air_conditioning","minibar","balcony"]`))},
			{RoomNumber: "202", RoomType: "deluxe", PricePerNight: 190, Capacity: 4, Floor: 2,
				Description: "Deluxe family room",
				Amenities:   datatypes.JSON([]byte(`["wifi","tv","air_conditioning","minibar","balcony"]`))},
			{RoomNumber: "301", RoomType: "suite", PricePerNight: 320, Capacity: 4, Floor: 3,
				Description: "Executive suite with separate living area",
				Amenities:   datatypes.JSON([]byte(`["wifi","tv","air_conditioning","minibar","balcony","jacuzzi"]`))},
		}
		for i := range rooms {
			rooms[i].IsAvailable = true
		}
		if err := db.Create(&rooms).Error; err != nil {
			return err
		}
		log.Println("Rooms seeded")
	}

	// ---------------- Offers ----------------
	var offerCount int64
	db.Model(&models.Offer{}).Count(&offerCount)
	if offerCount == 0 {
		offers := []models.Offer{
			{Name: "Breakfast", Description: "Continental breakfast buffet", Price: 15, OfferType: models.OfferTypeGlobal},
			{Name: "Lunch", Description: "Three course lunch", Price: 25, OfferType: models.OfferTypeGlobal},
			{Name: "Dinner", Description: "Chef's dinner menu", Price: 40, OfferType: models.OfferTypeGlobal},
			{Name: "Spa Massage", Description: "60 minute relaxing massage", Price: 80, OfferType: models.OfferTypeGlobal},
			{Name: "Airport Transfer", Description: "Private transfer to or from the airport", Price: 50, OfferType: models.OfferTypeGlobal},
			{Name: "Late Checkout", Description: "Keep the room until 6 PM", Price: 30, OfferType: models.OfferTypeGlobal},
			{Name: "Premium Alcohol Package", Description: "Curated selection of spirits and wine", Price: 120, OfferType: models.OfferTypeRoomSpecific},
			{Name: "Private Chef Service", Description: "In-room dinner prepared by a private chef", Price: 200, OfferType: models.OfferTypeRoomSpecific},
			{Name: "Champagne & Roses", Description: "Champagne bottle and rose decoration", Price: 75, OfferType: models.OfferTypeRoomSpecific},
			{Name: "Butler Service", Description: "Dedicated butler during the stay", Price: 150, OfferType: models.OfferTypeRoomSpecific},
		}
		for i := range offers {
			offers[i].IsActive = true
		}
		if err := db.Create(&offers).Error; err != nil {
			return err
		}

		// Room-specific offers are sold on the upper tiers only.
		var upperRooms []models.Room
		if err := db.Where("room_type IN ?", []string{"deluxe", "suite"}).Find(&upperRooms).Error; err != nil {
			return err
		}
		for _, offer := range offers {
			if offer.OfferType != models.OfferTypeRoomSpecific {
				continue
			}
			for _, room := range upperRooms {
				err := db.Exec(
					"INSERT INTO room_offers (room_id, offer_id) VALUES (?, ?)",
					room.ID, offer.ID,
				).Error
				if err != nil {
					return err
				}
			}
		}
		log.Println("Offers seeded")
	}

	return nil
}
