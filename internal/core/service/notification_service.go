package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
)

// NotificationService persists in-app notifications and turns reminder jobs
// into bill-reminder messages.
type NotificationService struct {
	repo   ports.NotificationRepository
	logger zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// Process satisfies ports.ReminderService: one reminder job becomes one
// notification addressed to the bill's apartment.
func (s *NotificationService) Process(ctx context.Context, input ports.ReminderInput) error {
	n := &domain.Notification{
		ApartmentNumber: input.ApartmentNumber,
		Type:            domain.NotificationBillReminder,
		Title:           "Payment due: " + input.Title,
		Message: fmt.Sprintf("Bill %s (%.2f) is due on %s.",
			input.BillNumber, float64(input.AmountCents)/100, input.DueDate),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("create reminder notification: %w", err)
	}

	s.logger.Info().
		Str("bill_number", input.BillNumber).
		Str("apartment", input.ApartmentNumber).
		Msg("bill reminder queued for apartment")
	return nil
}

// ListForApartment returns the notifications addressed to one apartment.
func (s *NotificationService) ListForApartment(ctx context.Context, apartmentNumber string) ([]domain.Notification, error) {
	return s.repo.ListByApartment(ctx, apartmentNumber)
}

// MarkRead flags a single notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}
