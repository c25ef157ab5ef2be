package repositories

import (
	"github.com/lcdc/selections-go/models"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	WithTx(tx *gorm.DB) NotificationRepo
	Create(n *models.Notification) error
	FindByUser(userID string) ([]models.Notification, error)
	MarkRead(id uint, userID string) error
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	return &DBNotificationRepo{db: tx}
}

func (r *DBNotificationRepo) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) FindByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

func (r *DBNotificationRepo) MarkRead(id uint, userID string) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true).Error
}
