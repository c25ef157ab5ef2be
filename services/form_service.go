package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lcdc/selections-go/dto"
	"github.com/lcdc/selections-go/models"
	"github.com/lcdc/selections-go/repositories"
	"github.com/lcdc/selections-go/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormNotifier receives lifecycle events after a transition is recorded.
// Implementations must not fail the transition: errors are logged and
// swallowed on their side.
type FormNotifier interface {
	FormAssigned(form *models.Form)
	FormSubmitted(form *models.Form)
	FormReopened(form *models.Form, reason string)
}

// FormService owns the form lifecycle: it is the only component that
// mutates FormStatus, and every mutation goes through the policy table
// in form_policy.go first.
type FormService struct {
	repos    *repositories.Repos
	notifier FormNotifier
}

func NewFormService(repos *repositories.Repos, notifier FormNotifier) *FormService {
	return &FormService{repos: repos, notifier: notifier}
}

func (s *FormService) CreateAndAssignForm(actor *types.Claims, input dto.CreateFormDTO) (*models.Form, error) {
	if err := authorizeForm(OpCreateForm, actor, nil); err != nil {
		return nil, err
	}

	formType := models.FormType(input.FormType)
	if !formType.Valid() {
		return nil, fmt.Errorf("%w: unknown form type %q", ErrInvalidInput, input.FormType)
	}

	customer, err := s.repos.User.FindByUserID(input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s not found", ErrInvalidInput, input.CustomerID)
		}
		return nil, err
	}

	exists, err := s.repos.Form.ExistsAssignment(input.ProjectIdentifier, input.LotIdentifier, input.CustomerID, formType)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: customer already has a %s form for this project and lot",
			ErrInvalidInput, formType.DisplayName())
	}

	assignerName := actor.Username
	if assigner, err := s.repos.User.FindByUserID(actor.UserID); err == nil {
		assignerName = assigner.FullName()
	}

	form := &models.Form{
		FormID:            uuid.NewString(),
		FormType:          formType,
		FormStatus:        models.FormStatusAssigned,
		ProjectIdentifier: input.ProjectIdentifier,
		LotIdentifier:     input.LotIdentifier,
		CustomerID:        customer.UserID,
		CustomerName:      customer.FullName(),
		CustomerEmail:     customer.Email,
		AssignedByUserID:  actor.UserID,
		AssignedByName:    assignerName,
		FormTitle:         input.FormTitle,
		Instructions:      input.Instructions,
		FormData:          toJSONMap(input.FormData),
		AssignedDate:      time.Now(),
	}

	if err := s.repos.Form.Create(form); err != nil {
		return nil, err
	}
	log.Printf("Form %s (%s) assigned to customer %s", form.FormID, form.FormType, form.CustomerID)

	if s.notifier != nil {
		s.notifier.FormAssigned(form)
	}
	return form, nil
}

func (s *FormService) GetFormByID(actor *types.Claims, formID string) (*models.Form, error) {
	form, err := s.findForm(formID)
	if err != nil {
		return nil, err
	}
	if err := authorizeForm(OpReadForm, actor, form); err != nil {
		return nil, err
	}
	return form, nil
}

// UpdateFormData is the single "save" endpoint: when the caller flags the
// payload as final it routes to SubmitForm, otherwise it stores a draft.
func (s *FormService) UpdateFormData(actor *types.Claims, formID string, input dto.UpdateFormDataDTO) (*models.Form, error) {
	if input.IsSubmitting {
		return s.SubmitForm(actor, formID, dto.SubmitFormDTO{
			FormData:        input.FormData,
			SubmissionNotes: input.SubmissionNotes,
		})
	}

	form, err := s.findForm(formID)
	if err != nil {
		return nil, err
	}
	if err := authorizeForm(OpUpdateFormData, actor, form); err != nil {
		return nil, err
	}
	if !form.FormStatus.Editable() {
		return nil, fmt.Errorf("%w: cannot update form data while %s", ErrInvalidState, form.FormStatus)
	}

	form.FormData = toJSONMap(input.FormData)
	if form.FormStatus == models.FormStatusAssigned || form.FormStatus == models.FormStatusReopened {
		form.FormStatus = models.FormStatusInProgress
	}

	if err := s.repos.Form.Save(form); err != nil {
		return nil, err
	}
	return form, nil
}

// SubmitForm finalizes the current data and appends a ledger entry. The
// status write and the history append run in one transaction with a row
// lock on the form, so two concurrent submits cannot claim the same
// submission number: the loser re-reads a SUBMITTED form and fails with
// ErrInvalidState.
func (s *FormService) SubmitForm(actor *types.Claims, formID string, input dto.SubmitFormDTO) (*models.Form, error) {
	var submitted *models.Form

	err := s.repos.ExecTx(func(tx *repositories.Repos) error {
		form, err := tx.Form.FindByFormIDForUpdate(formID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrFormNotFound, formID)
			}
			return err
		}
		if err := authorizeForm(OpSubmitForm, actor, form); err != nil {
			return err
		}
		if !form.FormStatus.Editable() {
			return fmt.Errorf("%w: cannot submit form while %s", ErrInvalidState, form.FormStatus)
		}

		now := time.Now()
		form.FormData = toJSONMap(input.FormData)
		form.FormStatus = models.FormStatusSubmitted
		form.LastSubmittedDate = &now
		if form.FirstSubmittedDate == nil {
			form.FirstSubmittedDate = &now
		}

		if err := tx.Form.Save(form); err != nil {
			return err
		}

		count, err := tx.History.CountByFormID(form.FormID)
		if err != nil {
			return err
		}

		submitterName := actor.Username
		if submitter, err := tx.User.FindByUserID(actor.UserID); err == nil {
			submitterName = submitter.FullName()
		}

		entry := &models.FormSubmissionHistory{
			FormIdentifier:          form.FormID,
			SubmissionNumber:        int(count) + 1,
			StatusAtSubmission:      form.FormStatus,
			FormDataSnapshot:        deepCopyFormData(form.FormData),
			SubmittedByCustomerID:   actor.UserID,
			SubmittedByCustomerName: submitterName,
			SubmissionNotes:         input.SubmissionNotes,
		}
		if err := tx.History.Append(entry); err != nil {
			return err
		}

		log.Printf("Form %s submitted, submission #%d", form.FormID, entry.SubmissionNumber)
		submitted = form
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.FormSubmitted(submitted)
	}
	return submitted, nil
}

func (s *FormService) ReopenForm(actor *types.Claims, formID string, input dto.ReopenFormDTO) (*models.Form, error) {
	form, err := s.findForm(formID)
	if err != nil {
		return nil, err
	}
	if err := authorizeForm(OpReopenForm, actor, form); err != nil {
		return nil, err
	}
	if form.FormStatus != models.FormStatusSubmitted {
		return nil, fmt.Errorf("%w: can only reopen submitted forms, form is %s", ErrInvalidState, form.FormStatus)
	}

	now := time.Now()
	actorID := actor.UserID
	form.FormStatus = models.FormStatusReopened
	form.ReopenedDate = &now
	form.ReopenedByUserID = &actorID
	form.ReopenReason = input.ReopenReason
	form.LastReopenedInstructions = input.NewInstructions
	form.ReopenCount++
	if input.NewInstructions != "" {
		form.Instructions = input.NewInstructions
	}

	if err := s.repos.Form.Save(form); err != nil {
		return nil, err
	}
	log.Printf("Form %s reopened (count %d)", form.FormID, form.ReopenCount)

	if s.notifier != nil {
		s.notifier.FormReopened(form, input.ReopenReason)
	}
	return form, nil
}

func (s *FormService) CompleteForm(actor *types.Claims, formID string) (*models.Form, error) {
	form, err := s.findForm(formID)
	if err != nil {
		return nil, err
	}
	if err := authorizeForm(OpCompleteForm, actor, form); err != nil {
		return nil, err
	}
	if form.FormStatus != models.FormStatusSubmitted {
		return nil, fmt.Errorf("%w: can only complete submitted forms, form is %s", ErrInvalidState, form.FormStatus)
	}

	now := time.Now()
	form.FormStatus = models.FormStatusCompleted
	form.CompletedDate = &now

	if err := s.repos.Form.Save(form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) UpdateFormDetails(actor *types.Claims, formID string, input dto.UpdateFormDetailsDTO) (*models.Form, error) {
	form, err := s.findForm(formID)
	if err != nil {
		return nil, err
	}
	if err := authorizeForm(OpUpdateFormDetails, actor, form); err != nil {
		return nil, err
	}

	if input.FormTitle != nil {
		form.FormTitle = *input.FormTitle
	}
	if input.Instructions != nil {
		form.Instructions = *input.Instructions
	}

	if err := s.repos.Form.Save(form); err != nil {
		return nil, err
	}
	return form, nil
}

// DeleteForm removes the form but keeps its submission history: the
// ledger is an audit trail independent of the form's existence.
func (s *FormService) DeleteForm(actor *types.Claims, formID string) error {
	form, err := s.findForm(formID)
	if err != nil {
		return err
	}
	if err := authorizeForm(OpDeleteForm, actor, form); err != nil {
		return err
	}
	if err := s.repos.Form.Delete(form); err != nil {
		return err
	}
	log.Printf("Form %s deleted, submission history retained", form.FormID)
	return nil
}

func (s *FormService) GetFormHistory(actor *types.Claims, formID string) ([]models.FormSubmissionHistory, error) {
	form, err := s.findForm(formID)
	if err != nil {
		return nil, err
	}
	if err := authorizeForm(OpListHistory, actor, form); err != nil {
		return nil, err
	}
	return s.repos.History.FindByFormID(form.FormID)
}

func (s *FormService) findForm(formID string) (*models.Form, error) {
	form, err := s.repos.Form.FindByFormID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrFormNotFound, formID)
		}
		return nil, err
	}
	return form, nil
}

func toJSONMap(data map[string]interface{}) datatypes.JSONMap {
	if data == nil {
		return datatypes.JSONMap{}
	}
	return datatypes.JSONMap(data)
}

// deepCopyFormData produces a structurally independent copy so later
// edits to the live form never alter a recorded snapshot.
func deepCopyFormData(data datatypes.JSONMap) datatypes.JSONMap {
	if len(data) == 0 {
		return datatypes.JSONMap{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal form data for snapshot: %v", err)
		return datatypes.JSONMap{}
	}
	var out datatypes.JSONMap
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("Failed to unmarshal form data snapshot: %v", err)
		return datatypes.JSONMap{}
	}
	return out
}
