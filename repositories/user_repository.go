package repositories

import (
	"gorm.io/gorm"

	"stayhub-backend/models"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// WithTx returns a copy bound to the given transaction handle.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{DB: tx}
}

func (r *UserRepository) Create(user *models.User) error {
	return translateDBError(r.DB.Create(user).Error, "user")
}

func (r *UserRepository) GetByID(id uint) (models.User, error) {
	var user models.User
	err := r.DB.First(&user, id).Error
	return user, translateDBError(err, "user")
}

func (r *UserRepository) GetByEmail(email string) (models.User, error) {
	var user models.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return user, translateDBError(err, "user")
}

func (r *UserRepository) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return user, translateDBError(err, "user")
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.DB.Order("id").Find(&users).Error
	return users, translateDBError(err, "user")
}

func (r *UserRepository) Save(user *models.User) error {
	return translateDBError(r.DB.Save(user).Error, "user")
}

func (r *UserRepository) Delete(id uint) error {
	res := r.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return translateDBError(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return translateDBError(gorm.ErrRecordNotFound, "user")
	}
	return nil
}

// AddBonusPoints increments the user's balance atomically.
func (r *UserRepository) AddBonusPoints(id uint, points int) error {
	err := r.DB.Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("bonus_points", gorm.Expr("bonus_points + ?", points)).Error
	return translateDBError(err, "user")
}
