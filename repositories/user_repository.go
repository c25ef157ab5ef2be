package repositories

import (
	"github.com/lcdc/selections-go/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	WithTx(tx *gorm.DB) UserRepo
	Create(user *models.User) error
	FindByUserID(userID string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Save(user *models.User) error
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

func (r *DBUserRepo) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *DBUserRepo) FindByUserID(userID string) (*models.User, error) {
	var user models.User
	err := r.db.Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *DBUserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *DBUserRepo) Save(user *models.User) error {
	return r.db.Save(user).Error
}
