package models

import (
	"time"

	"gorm.io/datatypes"
)

// FormSubmissionHistory is an immutable ledger entry recorded once per
// submit. SubmissionNumber is gapless per form, starting at 1; the unique
// index backs up the in-transaction numbering against concurrent submits.
type FormSubmissionHistory struct {
	ID                      uint              `gorm:"primaryKey" json:"-"`
	FormIdentifier          string            `gorm:"size:36;not null;uniqueIndex:idx_form_submission_number" json:"form_identifier"`
	SubmissionNumber        int               `gorm:"not null;uniqueIndex:idx_form_submission_number" json:"submission_number"`
	StatusAtSubmission      FormStatus        `gorm:"type:form_status;not null" json:"status_at_submission"`
	FormDataSnapshot        datatypes.JSONMap `gorm:"type:jsonb" json:"form_data_snapshot"`
	SubmittedByCustomerID   string            `gorm:"size:36;not null" json:"submitted_by_customer_id"`
	SubmittedByCustomerName string            `gorm:"size:100" json:"submitted_by_customer_name"`
	SubmissionNotes         string            `gorm:"type:text" json:"submission_notes"`
	SubmittedAt             time.Time         `gorm:"autoCreateTime" json:"submitted_at"`
}
