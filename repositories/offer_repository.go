package repositories

import (
	"gorm.io/gorm"

	"stayhub-backend/models"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

func (r *OfferRepository) WithTx(tx *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: tx}
}

func (r *OfferRepository) Create(offer *models.Offer) error {
	return translateDBError(r.DB.Create(offer).Error, "offer")
}

func (r *OfferRepository) GetByID(id uint) (models.Offer, error) {
	var offer models.Offer
	err := r.DB.First(&offer, id).Error
	return offer, translateDBError(err, "offer")
}

// GetByIDs returns the offers for the given ids, in no particular
// order. Missing ids are simply absent from the result; callers decide
// whether that is an error.
func (r *OfferRepository) GetByIDs(ids []uint) ([]models.Offer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var offers []models.Offer
	err := r.DB.Where("id IN ?", ids).Find(&offers).Error
	return offers, translateDBError(err, "offer")
}

func (r *OfferRepository) List() ([]models.Offer, error) {
	var offers []models.Offer
	err := r.DB.Order("id").Find(&offers).Error
	return offers, translateDBError(err, "offer")
}

func (r *OfferRepository) ListActive() ([]models.Offer, error) {
	var offers []models.Offer
	err := r.DB.Where("is_active = ?", true).Order("id").Find(&offers).Error
	return offers, translateDBError(err, "offer")
}

func (r *OfferRepository) ListGlobal() ([]models.Offer, error) {
	var offers []models.Offer
	err := r.DB.
		Where("offer_type = ? AND is_active = ?", models.OfferTypeGlobal, true).
		Order("id").
		Find(&offers).Error
	return offers, translateDBError(err, "offer")
}

func (r *OfferRepository) Save(offer *models.Offer) error {
	return translateDBError(r.DB.Save(offer).Error, "offer")
}

func (r *OfferRepository) Delete(id uint) error {
	res := r.DB.Delete(&models.Offer{}, id)
	if res.Error != nil {
		return translateDBError(res.Error, "offer")
	}
	if res.RowsAffected == 0 {
		return translateDBError(gorm.ErrRecordNotFound, "offer")
	}
	return nil
}
