package services

import (
	"github.com/lcdc/selections-go/config"
	"github.com/lcdc/selections-go/repositories"
)

type Services struct {
	Form         *FormService
	User         *UserService
	Notification *NotificationService
}

func New(repos *repositories.Repos) *Services {
	mailer := NewMailerClient(config.MailerServiceURL, config.MailerSenderName)
	notification := NewNotificationService(repos, mailer)
	return &Services{
		Form:         NewFormService(repos, notification),
		User:         NewUserService(repos),
		Notification: notification,
	}
}
