package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lcdc/selections-go/dto"
	"github.com/lcdc/selections-go/models"
	"github.com/lcdc/selections-go/repositories"
	"github.com/lcdc/selections-go/repositories/mock_repositories"
	"github.com/lcdc/selections-go/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recordingNotifier captures lifecycle events without touching the
// database or the mailer.
type recordingNotifier struct {
	assigned  []string
	submitted []string
	reopened  []string
}

func (n *recordingNotifier) FormAssigned(form *models.Form) {
	n.assigned = append(n.assigned, form.FormID)
}

func (n *recordingNotifier) FormSubmitted(form *models.Form) {
	n.submitted = append(n.submitted, form.FormID)
}

func (n *recordingNotifier) FormReopened(form *models.Form, reason string) {
	n.reopened = append(n.reopened, form.FormID)
}

type formServiceMocks struct {
	form     *mock_repositories.MockFormRepo
	history  *mock_repositories.MockFormHistoryRepo
	user     *mock_repositories.MockUserRepo
	notifier *recordingNotifier
}

// --------------------- Setup ---------------------
func setupFormServiceMocks(t *testing.T) (*FormService, *formServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &formServiceMocks{
		form:     mock_repositories.NewMockFormRepo(ctrl),
		history:  mock_repositories.NewMockFormHistoryRepo(ctrl),
		user:     mock_repositories.NewMockUserRepo(ctrl),
		notifier: &recordingNotifier{},
	}
	repos := &repositories.Repos{
		Form:    m.form,
		History: m.history,
		User:    m.user,
	}
	svc := NewFormService(repos, m.notifier)
	return svc, m
}

func ownerClaims() *types.Claims {
	return &types.Claims{UserID: "owner-1", Username: "owner", Role: string(models.UserRoleOwner)}
}

func customerClaims(userID string) *types.Claims {
	return &types.Claims{UserID: userID, Username: "customer", Role: string(models.UserRoleCustomer)}
}

func assignedForm() *models.Form {
	return &models.Form{
		FormID:            "form-1",
		FormType:          models.FormTypeWindows,
		FormStatus:        models.FormStatusAssigned,
		ProjectIdentifier: "proj-1",
		LotIdentifier:     "lot-7",
		CustomerID:        "cust-1",
		CustomerName:      "Jane Doe",
		CustomerEmail:     "jane@test.com",
		AssignedByUserID:  "owner-1",
	}
}

// --------------------- CreateAndAssignForm ---------------------
func TestCreateAndAssignForm_Success(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	customer := &models.User{
		UserID:    "cust-1",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@test.com",
		Role:      models.UserRoleCustomer,
	}
	m.user.EXPECT().FindByUserID("cust-1").Return(customer, nil)
	m.user.EXPECT().FindByUserID("owner-1").Return(&models.User{UserID: "owner-1", FirstName: "Olof", LastName: "Owner"}, nil)
	m.form.EXPECT().ExistsAssignment("proj-1", "lot-7", "cust-1", models.FormTypeWindows).Return(false, nil)
	m.form.EXPECT().Create(gomock.Any()).Return(nil)

	form, err := svc.CreateAndAssignForm(ownerClaims(), dto.CreateFormDTO{
		FormType:          "WINDOWS",
		ProjectIdentifier: "proj-1",
		LotIdentifier:     "lot-7",
		CustomerID:        "cust-1",
		Instructions:      "pick your windows",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, form.FormID)
	assert.Equal(t, models.FormStatusAssigned, form.FormStatus)
	assert.Equal(t, "Jane Doe", form.CustomerName)
	assert.Equal(t, "jane@test.com", form.CustomerEmail)
	assert.Equal(t, "Olof Owner", form.AssignedByName)
	assert.False(t, form.AssignedDate.IsZero())
	assert.Equal(t, []string{form.FormID}, m.notifier.assigned)
}

func TestCreateAndAssignForm_UnknownFormType(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	_, err := svc.CreateAndAssignForm(ownerClaims(), dto.CreateFormDTO{
		FormType:          "SOLAR_PANELS",
		ProjectIdentifier: "proj-1",
		LotIdentifier:     "lot-7",
		CustomerID:        "cust-1",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, m.notifier.assigned)
}

func TestCreateAndAssignForm_UnknownCustomer(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.user.EXPECT().FindByUserID("ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateAndAssignForm(ownerClaims(), dto.CreateFormDTO{
		FormType:          "WINDOWS",
		ProjectIdentifier: "proj-1",
		LotIdentifier:     "lot-7",
		CustomerID:        "ghost",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAndAssignForm_DuplicateAssignment(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.user.EXPECT().FindByUserID("cust-1").Return(&models.User{UserID: "cust-1"}, nil)
	m.form.EXPECT().ExistsAssignment("proj-1", "lot-7", "cust-1", models.FormTypePaint).Return(true, nil)

	_, err := svc.CreateAndAssignForm(ownerClaims(), dto.CreateFormDTO{
		FormType:          "PAINT",
		ProjectIdentifier: "proj-1",
		LotIdentifier:     "lot-7",
		CustomerID:        "cust-1",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAndAssignForm_CustomerForbidden(t *testing.T) {
	svc, _ := setupFormServiceMocks(t)

	_, err := svc.CreateAndAssignForm(customerClaims("cust-1"), dto.CreateFormDTO{
		FormType:          "WINDOWS",
		ProjectIdentifier: "proj-1",
		LotIdentifier:     "lot-7",
		CustomerID:        "cust-1",
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- GetFormByID ---------------------
func TestGetFormByID_NotFound(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormID("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetFormByID(ownerClaims(), "missing")
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestGetFormByID_CustomerCannotReadOthersForm(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormID("form-1").Return(assignedForm(), nil)

	_, err := svc.GetFormByID(customerClaims("someone-else"), "form-1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetFormByID_CustomerReadsOwnForm(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormID("form-1").Return(assignedForm(), nil)

	form, err := svc.GetFormByID(customerClaims("cust-1"), "form-1")
	assert.NoError(t, err)
	assert.Equal(t, "form-1", form.FormID)
}

// --------------------- UpdateFormData ---------------------
func TestUpdateFormData_DraftMovesToInProgress(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormID("form-1").Return(assignedForm(), nil)
	m.form.EXPECT().Save(gomock.Any()).Return(nil)

	form, err := svc.UpdateFormData(customerClaims("cust-1"), "form-1", dto.UpdateFormDataDTO{
		FormData: map[string]interface{}{"color": "white"},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.FormStatusInProgress, form.FormStatus)
	assert.Equal(t, "white", form.FormData["color"])
	assert.Empty(t, m.notifier.submitted)
}

func TestUpdateFormData_ReopenedMovesToInProgress(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	reopened := assignedForm()
	reopened.FormStatus = models.FormStatusReopened
	m.form.EXPECT().FindByFormID("form-1").Return(reopened, nil)
	m.form.EXPECT().Save(gomock.Any()).Return(nil)

	form, err := svc.UpdateFormData(customerClaims("cust-1"), "form-1", dto.UpdateFormDataDTO{
		FormData: map[string]interface{}{"color": "green"},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.FormStatusInProgress, form.FormStatus)
}

func TestUpdateFormData_SubmittedRejected(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	submitted := assignedForm()
	submitted.FormStatus = models.FormStatusSubmitted
	m.form.EXPECT().FindByFormID("form-1").Return(submitted, nil)

	_, err := svc.UpdateFormData(customerClaims("cust-1"), "form-1", dto.UpdateFormDataDTO{
		FormData: map[string]interface{}{"color": "white"},
	})

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateFormData_IsSubmittingRoutesToSubmit(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormIDForUpdate("form-1").Return(assignedForm(), nil)
	m.form.EXPECT().Save(gomock.Any()).Return(nil)
	m.history.EXPECT().CountByFormID("form-1").Return(int64(0), nil)
	m.user.EXPECT().FindByUserID("cust-1").Return(&models.User{UserID: "cust-1", FirstName: "Jane", LastName: "Doe"}, nil)
	m.history.EXPECT().Append(gomock.Any()).Return(nil)

	form, err := svc.UpdateFormData(customerClaims("cust-1"), "form-1", dto.UpdateFormDataDTO{
		FormData:     map[string]interface{}{"color": "white"},
		IsSubmitting: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.FormStatusSubmitted, form.FormStatus)
	assert.Equal(t, []string{"form-1"}, m.notifier.submitted)
}

// --------------------- SubmitForm ---------------------
func TestSubmitForm_AssignsNextSubmissionNumber(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	form := assignedForm()
	form.FormStatus = models.FormStatusReopened

	var entry *models.FormSubmissionHistory
	m.form.EXPECT().FindByFormIDForUpdate("form-1").Return(form, nil)
	m.form.EXPECT().Save(gomock.Any()).Return(nil)
	m.history.EXPECT().CountByFormID("form-1").Return(int64(2), nil)
	m.user.EXPECT().FindByUserID("cust-1").Return(&models.User{UserID: "cust-1", FirstName: "Jane", LastName: "Doe"}, nil)
	m.history.EXPECT().Append(gomock.Any()).DoAndReturn(func(e *models.FormSubmissionHistory) error {
		entry = e
		return nil
	})

	result, err := svc.SubmitForm(customerClaims("cust-1"), "form-1", dto.SubmitFormDTO{
		FormData:        map[string]interface{}{"color": "white"},
		SubmissionNotes: "third time is the charm",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.FormStatusSubmitted, result.FormStatus)
	assert.NotNil(t, result.LastSubmittedDate)
	assert.NotNil(t, result.FirstSubmittedDate)
	assert.Equal(t, 3, entry.SubmissionNumber)
	assert.Equal(t, "form-1", entry.FormIdentifier)
	assert.Equal(t, "Jane Doe", entry.SubmittedByCustomerName)
	assert.Equal(t, "third time is the charm", entry.SubmissionNotes)
	assert.Equal(t, []string{"form-1"}, m.notifier.submitted)
}

func TestSubmitForm_SnapshotIndependentOfLaterEdits(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	var entry *models.FormSubmissionHistory
	m.form.EXPECT().FindByFormIDForUpdate("form-1").Return(assignedForm(), nil)
	m.form.EXPECT().Save(gomock.Any()).Return(nil)
	m.history.EXPECT().CountByFormID("form-1").Return(int64(0), nil)
	m.user.EXPECT().FindByUserID("cust-1").Return(&models.User{UserID: "cust-1"}, nil)
	m.history.EXPECT().Append(gomock.Any()).DoAndReturn(func(e *models.FormSubmissionHistory) error {
		entry = e
		return nil
	})

	result, err := svc.SubmitForm(customerClaims("cust-1"), "form-1", dto.SubmitFormDTO{
		FormData: map[string]interface{}{"color": "white", "panes": map[string]interface{}{"count": "3"}},
	})
	assert.NoError(t, err)

	result.FormData["color"] = "black"
	result.FormData["panes"].(map[string]interface{})["count"] = "9"

	assert.Equal(t, "white", entry.FormDataSnapshot["color"])
	assert.Equal(t, "3", entry.FormDataSnapshot["panes"].(map[string]interface{})["count"])
}

func TestSubmitForm_AlreadySubmitted(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	submitted := assignedForm()
	submitted.FormStatus = models.FormStatusSubmitted
	m.form.EXPECT().FindByFormIDForUpdate("form-1").Return(submitted, nil)

	_, err := svc.SubmitForm(customerClaims("cust-1"), "form-1", dto.SubmitFormDTO{
		FormData: map[string]interface{}{"color": "white"},
	})

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, m.notifier.submitted)
}

func TestSubmitForm_NotFound(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormIDForUpdate("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.SubmitForm(ownerClaims(), "missing", dto.SubmitFormDTO{
		FormData: map[string]interface{}{},
	})

	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestSubmitForm_CustomerCannotSubmitOthersForm(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormIDForUpdate("form-1").Return(assignedForm(), nil)

	_, err := svc.SubmitForm(customerClaims("someone-else"), "form-1", dto.SubmitFormDTO{
		FormData: map[string]interface{}{"color": "white"},
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- ReopenForm ---------------------
func TestReopenForm_Success(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	submitted := assignedForm()
	submitted.FormStatus = models.FormStatusSubmitted
	submitted.Instructions = "original instructions"
	m.form.EXPECT().FindByFormID("form-1").Return(submitted, nil)
	m.form.EXPECT().Save(gomock.Any()).Return(nil)

	form, err := svc.ReopenForm(ownerClaims(), "form-1", dto.ReopenFormDTO{
		ReopenReason:    "wrong color codes",
		NewInstructions: "use the 2026 catalog",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.FormStatusReopened, form.FormStatus)
	assert.Equal(t, 1, form.ReopenCount)
	assert.Equal(t, "wrong color codes", form.ReopenReason)
	assert.Equal(t, "use the 2026 catalog", form.Instructions)
	assert.NotNil(t, form.ReopenedDate)
	assert.Equal(t, "owner-1", *form.ReopenedByUserID)
	assert.Equal(t, []string{"form-1"}, m.notifier.reopened)
}

func TestReopenForm_KeepsInstructionsWhenNoneGiven(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	submitted := assignedForm()
	submitted.FormStatus = models.FormStatusSubmitted
	submitted.Instructions = "original instructions"
	m.form.EXPECT().FindByFormID("form-1").Return(submitted, nil)
	m.form.EXPECT().Save(gomock.Any()).Return(nil)

	form, err := svc.ReopenForm(ownerClaims(), "form-1", dto.ReopenFormDTO{
		ReopenReason: "missing selections",
	})

	assert.NoError(t, err)
	assert.Equal(t, "original instructions", form.Instructions)
}

func TestReopenForm_NotSubmitted(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormID("form-1").Return(assignedForm(), nil)

	_, err := svc.ReopenForm(ownerClaims(), "form-1", dto.ReopenFormDTO{ReopenReason: "too early"})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestReopenForm_CompletedStaysClosed(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	completed := assignedForm()
	completed.FormStatus = models.FormStatusCompleted
	m.form.EXPECT().FindByFormID("form-1").Return(completed, nil)

	_, err := svc.ReopenForm(ownerClaims(), "form-1", dto.ReopenFormDTO{ReopenReason: "second thoughts"})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestReopenForm_CustomerForbidden(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	submitted := assignedForm()
	submitted.FormStatus = models.FormStatusSubmitted
	m.form.EXPECT().FindByFormID("form-1").Return(submitted, nil)

	_, err := svc.ReopenForm(customerClaims("cust-1"), "form-1", dto.ReopenFormDTO{ReopenReason: "let me fix it"})
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- CompleteForm ---------------------
func TestCompleteForm_Success(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	submitted := assignedForm()
	submitted.FormStatus = models.FormStatusSubmitted
	m.form.EXPECT().FindByFormID("form-1").Return(submitted, nil)
	m.form.EXPECT().Save(gomock.Any()).Return(nil)

	form, err := svc.CompleteForm(ownerClaims(), "form-1")
	assert.NoError(t, err)
	assert.Equal(t, models.FormStatusCompleted, form.FormStatus)
	assert.NotNil(t, form.CompletedDate)
}

func TestCompleteForm_NotSubmitted(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormID("form-1").Return(assignedForm(), nil)

	_, err := svc.CompleteForm(ownerClaims(), "form-1")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteForm_CustomerForbidden(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	submitted := assignedForm()
	submitted.FormStatus = models.FormStatusSubmitted
	m.form.EXPECT().FindByFormID("form-1").Return(submitted, nil)

	_, err := svc.CompleteForm(customerClaims("cust-1"), "form-1")
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- UpdateFormDetails ---------------------
func TestUpdateFormDetails_PartialUpdate(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	form := assignedForm()
	form.FormTitle = "old title"
	form.Instructions = "old instructions"
	m.form.EXPECT().FindByFormID("form-1").Return(form, nil)
	m.form.EXPECT().Save(gomock.Any()).Return(nil)

	title := "new title"
	updated, err := svc.UpdateFormDetails(ownerClaims(), "form-1", dto.UpdateFormDetailsDTO{FormTitle: &title})

	assert.NoError(t, err)
	assert.Equal(t, "new title", updated.FormTitle)
	assert.Equal(t, "old instructions", updated.Instructions)
}

// --------------------- DeleteForm ---------------------
func TestDeleteForm_KeepsSubmissionHistory(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormID("form-1").Return(assignedForm(), nil)
	m.form.EXPECT().Delete(gomock.Any()).Return(nil)
	// no expectations on m.history: deleting a form must not touch the ledger

	err := svc.DeleteForm(ownerClaims(), "form-1")
	assert.NoError(t, err)
}

func TestDeleteForm_CustomerForbidden(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormID("form-1").Return(assignedForm(), nil)

	err := svc.DeleteForm(customerClaims("cust-1"), "form-1")
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- GetFormHistory ---------------------
func TestGetFormHistory_Success(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	entries := []models.FormSubmissionHistory{
		{FormIdentifier: "form-1", SubmissionNumber: 1, FormDataSnapshot: datatypes.JSONMap{"color": "white"}},
		{FormIdentifier: "form-1", SubmissionNumber: 2, FormDataSnapshot: datatypes.JSONMap{"color": "grey"}},
	}
	m.form.EXPECT().FindByFormID("form-1").Return(assignedForm(), nil)
	m.history.EXPECT().FindByFormID("form-1").Return(entries, nil)

	history, err := svc.GetFormHistory(customerClaims("cust-1"), "form-1")
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, 1, history[0].SubmissionNumber)
	assert.Equal(t, 2, history[1].SubmissionNumber)
}

func TestGetFormHistory_CustomerCannotReadOthersHistory(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.form.EXPECT().FindByFormID("form-1").Return(assignedForm(), nil)

	_, err := svc.GetFormHistory(customerClaims("someone-else"), "form-1")
	assert.ErrorIs(t, err, ErrForbidden)
}
