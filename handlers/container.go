package handlers

import (
	"github.com/lcdc/selections-go/services"
)

type Handlers struct {
	Form         *FormHandler
	User         *UserHandler
	Notification *NotificationHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Form:         NewFormHandler(svc.Form),
		User:         NewUserHandler(svc.User),
		Notification: NewNotificationHandler(svc.Notification),
	}
}
