package services

import (
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/lcdc/selections-go/models"
	"github.com/lcdc/selections-go/repositories"
)

// NotificationService records in-app notifications and relays emails for
// form lifecycle events. Every path here is continue-on-error: a failed
// notification must never undo or block the transition that caused it.
type NotificationService struct {
	repos  *repositories.Repos
	mailer *MailerClient
}

func NewNotificationService(repos *repositories.Repos, mailer *MailerClient) *NotificationService {
	return &NotificationService{repos: repos, mailer: mailer}
}

func (s *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.repos.Notification.FindByUser(userID)
}

func (s *NotificationService) MarkRead(id uint, userID string) error {
	return s.repos.Notification.MarkRead(id, userID)
}

func (s *NotificationService) FormAssigned(form *models.Form) {
	typeName := form.FormType.DisplayName()
	s.record(form.CustomerID,
		"New Form Assigned: "+typeName,
		fmt.Sprintf("A %s form has been assigned to you for project %s. Please complete it at your earliest convenience.",
			typeName, form.ProjectIdentifier),
		models.NotificationFormAssigned, form)

	s.mailer.SendAsync(form.CustomerEmail,
		"New Form to Complete: "+typeName,
		buildFormAssignedEmail(form))
}

func (s *NotificationService) FormSubmitted(form *models.Form) {
	typeName := form.FormType.DisplayName()
	s.record(form.AssignedByUserID,
		"Form Submitted: "+typeName,
		fmt.Sprintf("%s has submitted their %s form for project %s.",
			form.CustomerName, typeName, form.ProjectIdentifier),
		models.NotificationFormSubmitted, form)

	assigner, err := s.repos.User.FindByUserID(form.AssignedByUserID)
	if err != nil {
		log.Printf("Cannot send form submitted email: assigner %s not found: %v", form.AssignedByUserID, err)
		return
	}
	s.mailer.SendAsync(assigner.Email,
		"Form Submitted by "+form.CustomerName,
		buildFormSubmittedEmail(form))
}

func (s *NotificationService) FormReopened(form *models.Form, reason string) {
	typeName := form.FormType.DisplayName()
	s.record(form.CustomerID,
		"Form Reopened: "+typeName,
		fmt.Sprintf("Your %s form for project %s has been reopened. Reason: %s. Please review and resubmit.",
			typeName, form.ProjectIdentifier, reason),
		models.NotificationFormReopened, form)

	s.mailer.SendAsync(form.CustomerEmail,
		"Form Reopened: "+typeName,
		buildFormReopenedEmail(form, reason))
}

func (s *NotificationService) record(userID, title, message string, category models.NotificationCategory, form *models.Form) {
	n := &models.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Category: category,
		Link:     "/forms/" + form.FormID,
	}
	if err := s.repos.Notification.Create(n); err != nil {
		log.Printf("Failed to record %s notification for user %s: %v", category, userID, err)
	}
}

func buildFormAssignedEmail(form *models.Form) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString("<h2>New Form Assignment</h2>")
	b.WriteString("<p>Hello " + html.EscapeString(form.CustomerName) + ",</p>")
	b.WriteString("<p>A new <strong>" + form.FormType.DisplayName() + "</strong> form has been assigned to you.</p>")
	b.WriteString("<p><strong>Project:</strong> " + html.EscapeString(form.ProjectIdentifier) + "</p>")
	if form.Instructions != "" {
		b.WriteString("<p><strong>Instructions:</strong></p>")
		b.WriteString("<p>" + html.EscapeString(form.Instructions) + "</p>")
	}
	b.WriteString("<p>Please log in to the customer portal to complete this form.</p>")
	b.WriteString("</body></html>")
	return b.String()
}

func buildFormSubmittedEmail(form *models.Form) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString("<h2>Form Submitted</h2>")
	b.WriteString("<p>" + html.EscapeString(form.CustomerName) + " has submitted their <strong>" +
		form.FormType.DisplayName() + "</strong> form.</p>")
	b.WriteString("<p><strong>Project:</strong> " + html.EscapeString(form.ProjectIdentifier) + "</p>")
	b.WriteString("<p><strong>Form ID:</strong> " + form.FormID + "</p>")
	b.WriteString("<p>Please review the submission in the admin portal.</p>")
	b.WriteString("</body></html>")
	return b.String()
}

func buildFormReopenedEmail(form *models.Form, reason string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString("<h2>Form Reopened for Review</h2>")
	b.WriteString("<p>Hello " + html.EscapeString(form.CustomerName) + ",</p>")
	b.WriteString("<p>Your <strong>" + form.FormType.DisplayName() + "</strong> form has been reopened for revision.</p>")
	b.WriteString("<p><strong>Reason for reopening:</strong></p>")
	b.WriteString("<p>" + html.EscapeString(reason) + "</p>")
	if form.Instructions != "" {
		b.WriteString("<p><strong>Updated Instructions:</strong></p>")
		b.WriteString("<p>" + html.EscapeString(form.Instructions) + "</p>")
	}
	b.WriteString("<p>Please log in to the customer portal to review and resubmit your form.</p>")
	b.WriteString("</body></html>")
	return b.String()
}
