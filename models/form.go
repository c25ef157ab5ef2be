package models

import (
	"time"

	"gorm.io/datatypes"
)

type FormStatus string

const (
	FormStatusAssigned   FormStatus = "ASSIGNED"
	FormStatusInProgress FormStatus = "IN_PROGRESS"
	FormStatusSubmitted  FormStatus = "SUBMITTED"
	FormStatusReopened   FormStatus = "REOPENED"
	FormStatusCompleted  FormStatus = "COMPLETED"
)

// Editable reports whether form data may still change, i.e. whether
// updateFormData/submitForm are legal from this status.
func (s FormStatus) Editable() bool {
	switch s {
	case FormStatusAssigned, FormStatusInProgress, FormStatusReopened:
		return true
	case FormStatusSubmitted, FormStatusCompleted:
		return false
	}
	return false
}

type FormType string

const (
	FormTypeExteriorDoors   FormType = "EXTERIOR_DOORS"
	FormTypeGarageDoors     FormType = "GARAGE_DOORS"
	FormTypeWindows         FormType = "WINDOWS"
	FormTypeAsphaltShingles FormType = "ASPHALT_SHINGLES"
	FormTypeWoodwork        FormType = "WOODWORK"
	FormTypePaint           FormType = "PAINT"
)

func (t FormType) Valid() bool {
	switch t {
	case FormTypeExteriorDoors, FormTypeGarageDoors, FormTypeWindows,
		FormTypeAsphaltShingles, FormTypeWoodwork, FormTypePaint:
		return true
	}
	return false
}

func (t FormType) DisplayName() string {
	switch t {
	case FormTypeExteriorDoors:
		return "Exterior Doors"
	case FormTypeGarageDoors:
		return "Garage Doors"
	case FormTypeWindows:
		return "Windows"
	case FormTypeAsphaltShingles:
		return "Asphalt Shingles"
	case FormTypeWoodwork:
		return "Woodwork"
	case FormTypePaint:
		return "Paint"
	}
	return string(t)
}

// Form is one assignment of a typed selection questionnaire to a customer
// for a specific lot. FormStatus is mutated only by FormService.
type Form struct {
	ID                       uint              `gorm:"primaryKey" json:"-"`
	FormID                   string            `gorm:"size:36;not null;uniqueIndex" json:"form_id"`
	FormType                 FormType          `gorm:"type:form_type;not null" json:"form_type"`
	FormStatus               FormStatus        `gorm:"type:form_status;not null;default:'ASSIGNED'" json:"form_status"`
	ProjectIdentifier        string            `gorm:"size:100;not null;index" json:"project_identifier"`
	LotIdentifier            string            `gorm:"size:36;not null" json:"lot_identifier"`
	CustomerID               string            `gorm:"size:36;not null;index" json:"customer_id"`
	CustomerName             string            `gorm:"size:100" json:"customer_name"`
	CustomerEmail            string            `gorm:"size:100" json:"customer_email"`
	AssignedByUserID         string            `gorm:"size:36;not null;index" json:"assigned_by_user_id"`
	AssignedByName           string            `gorm:"size:100" json:"assigned_by_name"`
	FormTitle                string            `gorm:"size:200" json:"form_title"`
	Instructions             string            `gorm:"type:text" json:"instructions"`
	FormData                 datatypes.JSONMap `gorm:"type:jsonb" json:"form_data"`
	AssignedDate             time.Time         `json:"assigned_date"`
	FirstSubmittedDate       *time.Time        `json:"first_submitted_date"`
	LastSubmittedDate        *time.Time        `json:"last_submitted_date"`
	CompletedDate            *time.Time        `json:"completed_date"`
	ReopenedDate             *time.Time        `json:"reopened_date"`
	ReopenedByUserID         *string           `gorm:"size:36" json:"reopened_by_user_id"`
	ReopenReason             string            `gorm:"type:text" json:"reopen_reason"`
	LastReopenedInstructions string            `gorm:"type:text" json:"last_reopened_instructions"`
	ReopenCount              int               `gorm:"not null;default:0" json:"reopen_count"`
	CreatedAt                time.Time         `json:"created_at"`
	UpdatedAt                time.Time         `json:"updated_at"`
}
