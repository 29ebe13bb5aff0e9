package services

import (
	"stayhub-backend/domain"
	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

type OfferService struct {
	Offers *repositories.OfferRepository
}

func NewOfferService(offers *repositories.OfferRepository) *OfferService {
	return &OfferService{Offers: offers}
}

type OfferInput struct {
	Name        string
	Description string
	Price       float64
	OfferType   string
	IsActive    *bool
}

func (s *OfferService) List() ([]models.Offer, error) {
	return s.Offers.List()
}

func (s *OfferService) ListActive() ([]models.Offer, error) {
	return s.Offers.ListActive()
}

func (s *OfferService) ListGlobal() ([]models.Offer, error) {
	return s.Offers.ListGlobal()
}

func (s *OfferService) Get(id uint) (models.Offer, error) {
	return s.Offers.GetByID(id)
}

func (s *OfferService) Create(in OfferInput) (models.Offer, error) {
	if err := validateOfferBasics(in.Name, in.Price, in.OfferType); err != nil {
		return models.Offer{}, err
	}
	offer := models.Offer{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		OfferType:   in.OfferType,
		IsActive:    true,
	}
	if in.IsActive != nil {
		offer.IsActive = *in.IsActive
	}
	if err := s.Offers.Create(&offer); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

func (s *OfferService) Update(id uint, patch models.OfferPatch) (models.Offer, error) {
	offer, err := s.Offers.GetByID(id)
	if err != nil {
		return models.Offer{}, err
	}
	offer = patch.Apply(offer)
	if err := validateOfferBasics(offer.Name, offer.Price, offer.OfferType); err != nil {
		return models.Offer{}, err
	}
	if err := s.Offers.Save(&offer); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

func (s *OfferService) Delete(id uint) error {
	if _, err := s.Offers.GetByID(id); err != nil {
		return err
	}
	return s.Offers.Delete(id)
}

func validateOfferBasics(name string, price float64, offerType string) error {
	if name == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	if price < 0 {
		return domain.ValidationError{Field: "price", Msg: "must not be negative"}
	}
	if !models.ValidOfferType(offerType) {
		return domain.ValidationError{Field: "offer_type", Msg: "must be global or room_specific"}
	}
	return nil
}
