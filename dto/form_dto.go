package dto

type CreateFormDTO struct {
	FormType          string                 `json:"form_type" binding:"required"`
	ProjectIdentifier string                 `json:"project_identifier" binding:"required"`
	LotIdentifier     string                 `json:"lot_identifier" binding:"required"`
	CustomerID        string                 `json:"customer_id" binding:"required"`
	FormTitle         string                 `json:"form_title"`
	Instructions      string                 `json:"instructions"`
	FormData          map[string]interface{} `json:"form_data"`
}

type UpdateFormDataDTO struct {
	FormData        map[string]interface{} `json:"form_data" binding:"required"`
	IsSubmitting    bool                   `json:"is_submitting"`
	SubmissionNotes string                 `json:"submission_notes"`
}

type SubmitFormDTO struct {
	FormData        map[string]interface{} `json:"form_data" binding:"required"`
	SubmissionNotes string                 `json:"submission_notes"`
}

type ReopenFormDTO struct {
	ReopenReason    string `json:"reopen_reason" binding:"required"`
	NewInstructions string `json:"new_instructions"`
}

type UpdateFormDetailsDTO struct {
	FormTitle    *string `json:"form_title"`
	Instructions *string `json:"instructions"`
}

// FormListFilter carries the optional query-string filters of GET /forms.
type FormListFilter struct {
	ProjectIdentifier string `form:"projectId"`
	CustomerID        string `form:"customerId"`
	Status            string `form:"status"`
	FormType          string `form:"formType"`
	CreatedBy         string `form:"createdBy"`
}
