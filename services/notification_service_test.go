package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lcdc/selections-go/models"
	"github.com/lcdc/selections-go/repositories"
	"github.com/lcdc/selections-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupNotificationServiceMocks(t *testing.T) (*NotificationService, *mock_repositories.MockNotificationRepo, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotif := mock_repositories.NewMockNotificationRepo(ctrl)
	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{
		Notification: mockNotif,
		User:         mockUser,
	}
	// empty base URL makes the mailer a no-op
	svc := NewNotificationService(repos, NewMailerClient("", "LCDC"))
	return svc, mockNotif, mockUser
}

func TestFormAssigned_RecordsNotificationForCustomer(t *testing.T) {
	svc, mockNotif, _ := setupNotificationServiceMocks(t)

	var recorded *models.Notification
	mockNotif.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		recorded = n
		return nil
	})

	svc.FormAssigned(assignedForm())

	assert.Equal(t, "cust-1", recorded.UserID)
	assert.Equal(t, models.NotificationFormAssigned, recorded.Category)
	assert.Equal(t, "/forms/form-1", recorded.Link)
	assert.Contains(t, recorded.Title, "Windows")
}

func TestFormSubmitted_NotifiesAssigner(t *testing.T) {
	svc, mockNotif, mockUser := setupNotificationServiceMocks(t)

	var recorded *models.Notification
	mockNotif.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		recorded = n
		return nil
	})
	mockUser.EXPECT().FindByUserID("owner-1").Return(&models.User{UserID: "owner-1", Email: "owner@test.com"}, nil)

	svc.FormSubmitted(assignedForm())

	assert.Equal(t, "owner-1", recorded.UserID)
	assert.Equal(t, models.NotificationFormSubmitted, recorded.Category)
	assert.Contains(t, recorded.Message, "Jane Doe")
}

func TestFormSubmitted_MissingAssignerStillRecords(t *testing.T) {
	svc, mockNotif, mockUser := setupNotificationServiceMocks(t)

	mockNotif.EXPECT().Create(gomock.Any()).Return(nil)
	mockUser.EXPECT().FindByUserID("owner-1").Return(nil, gorm.ErrRecordNotFound)

	// the email is skipped but the in-app notification still lands
	svc.FormSubmitted(assignedForm())
}

func TestFormReopened_RecordsReasonForCustomer(t *testing.T) {
	svc, mockNotif, _ := setupNotificationServiceMocks(t)

	var recorded *models.Notification
	mockNotif.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		recorded = n
		return nil
	})

	svc.FormReopened(assignedForm(), "wrong color codes")

	assert.Equal(t, "cust-1", recorded.UserID)
	assert.Equal(t, models.NotificationFormReopened, recorded.Category)
	assert.Contains(t, recorded.Message, "wrong color codes")
}
