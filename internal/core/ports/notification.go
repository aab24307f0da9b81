package ports

import (
	"context"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
)

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByApartment(ctx context.Context, apartmentNumber string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// ReminderInput is one unit of work for the reminder dispatcher: a bill that
// is about to fall due and needs an in-app nudge.
type ReminderInput struct {
	BillID          string
	BillNumber      string
	ApartmentNumber string
	Title           string
	AmountCents     int64
	DueDate         string
}

// ReminderService consumes reminder jobs off the dispatcher.
type ReminderService interface {
	Process(ctx context.Context, input ReminderInput) error
}
