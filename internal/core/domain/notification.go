package domain

import "time"

type NotificationType string

const (
	NotificationBillReminder NotificationType = "bill_reminder"
	NotificationAnnouncement NotificationType = "announcement"
)

// Notification is an in-app message addressed to a single apartment.
type Notification struct {
	ID              string           `json:"id"`
	ApartmentNumber string           `json:"apartment_number"`
	Type            NotificationType `json:"type"`
	Title           string           `json:"title"`
	Message         string           `json:"message"`
	Read            bool             `json:"read"`
	CreatedAt       time.Time        `json:"created_at"`
}
