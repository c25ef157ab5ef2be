package models

import "time"

type NotificationCategory string

const (
	NotificationFormAssigned  NotificationCategory = "FORM_ASSIGNED"
	NotificationFormSubmitted NotificationCategory = "FORM_SUBMITTED"
	NotificationFormReopened  NotificationCategory = "FORM_REOPENED"
)

type Notification struct {
	ID        uint                 `gorm:"primaryKey" json:"id"`
	UserID    string               `gorm:"size:36;not null;index" json:"user_id"`
	Title     string               `gorm:"size:200;not null" json:"title"`
	Message   string               `gorm:"type:text" json:"message"`
	Category  NotificationCategory `gorm:"size:50;not null" json:"category"`
	Link      string               `gorm:"size:200" json:"link"`
	Read      bool                 `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time            `json:"created_at"`
}
