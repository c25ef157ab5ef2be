package repositories

import (
	"errors"

	"github.com/lcdc/selections-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FormRepo interface {
	WithTx(tx *gorm.DB) FormRepo
	Create(form *models.Form) error
	FindByFormID(formID string) (*models.Form, error)
	// FindByFormIDForUpdate takes a row lock on the form; callers must be
	// inside a transaction.
	FindByFormIDForUpdate(formID string) (*models.Form, error)
	Save(form *models.Form) error
	Delete(form *models.Form) error
	FindAll() ([]models.Form, error)
	FindByProject(projectIdentifier string) ([]models.Form, error)
	FindByCustomer(customerID string) ([]models.Form, error)
	FindByStatus(status models.FormStatus) ([]models.Form, error)
	FindByAssigner(userID string) ([]models.Form, error)
	ExistsAssignment(projectIdentifier, lotIdentifier, customerID string, formType models.FormType) (bool, error)
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}

func (r *DBFormRepo) Create(form *models.Form) error {
	return r.db.Create(form).Error
}

func (r *DBFormRepo) FindByFormID(formID string) (*models.Form, error) {
	var form models.Form
	err := r.db.Where("form_id = ?", formID).First(&form).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *DBFormRepo) FindByFormIDForUpdate(formID string) (*models.Form, error) {
	var form models.Form
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("form_id = ?", formID).First(&form).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *DBFormRepo) Save(form *models.Form) error {
	return r.db.Save(form).Error
}

func (r *DBFormRepo) Delete(form *models.Form) error {
	return r.db.Delete(form).Error
}

func (r *DBFormRepo) FindAll() ([]models.Form, error) {
	var forms []models.Form
	err := r.db.Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) FindByProject(projectIdentifier string) ([]models.Form, error) {
	var forms []models.Form
	err := r.db.Where("project_identifier = ?", projectIdentifier).
		Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) FindByCustomer(customerID string) ([]models.Form, error) {
	var forms []models.Form
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) FindByStatus(status models.FormStatus) ([]models.Form, error) {
	var forms []models.Form
	err := r.db.Where("form_status = ?", status).
		Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) FindByAssigner(userID string) ([]models.Form, error) {
	var forms []models.Form
	err := r.db.Where("assigned_by_user_id = ?", userID).
		Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) ExistsAssignment(projectIdentifier, lotIdentifier, customerID string, formType models.FormType) (bool, error) {
	var form models.Form
	err := r.db.
		Where("project_identifier = ? AND lot_identifier = ? AND customer_id = ? AND form_type = ?",
			projectIdentifier, lotIdentifier, customerID, formType).
		First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
