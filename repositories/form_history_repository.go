package repositories

import (
	"github.com/lcdc/selections-go/models"
	"gorm.io/gorm"
)

// FormHistoryRepo is append-only: entries are never updated or deleted,
// and they outlive their parent form.
type FormHistoryRepo interface {
	WithTx(tx *gorm.DB) FormHistoryRepo
	Append(entry *models.FormSubmissionHistory) error
	CountByFormID(formID string) (int64, error)
	FindByFormID(formID string) ([]models.FormSubmissionHistory, error)
}

type DBFormHistoryRepo struct {
	db *gorm.DB
}

func NewFormHistoryRepo(db *gorm.DB) *DBFormHistoryRepo {
	return &DBFormHistoryRepo{db: db}
}

func (r *DBFormHistoryRepo) WithTx(tx *gorm.DB) FormHistoryRepo {
	return &DBFormHistoryRepo{db: tx}
}

func (r *DBFormHistoryRepo) Append(entry *models.FormSubmissionHistory) error {
	return r.db.Create(entry).Error
}

func (r *DBFormHistoryRepo) CountByFormID(formID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.FormSubmissionHistory{}).
		Where("form_identifier = ?", formID).Count(&count).Error
	return count, err
}

func (r *DBFormHistoryRepo) FindByFormID(formID string) ([]models.FormSubmissionHistory, error) {
	var entries []models.FormSubmissionHistory
	err := r.db.Where("form_identifier = ?", formID).
		Order("submission_number asc").Find(&entries).Error
	return entries, err
}
