package ports

import (
	"context"
	"time"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
)

// BillRepository defines the interface for bill persistence.
type BillRepository interface {
	ListAll(ctx context.Context) ([]domain.Bill, error)
	ListByApartment(ctx context.Context, apartmentNumber string) ([]domain.Bill, error)
	// ListOutstandingDueBefore returns unpaid bills whose due date falls
	// strictly before the cutoff.
	ListOutstandingDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Bill, error)
}

// BillSummary is the derived console view for accounting roles.
type BillSummary struct {
	TotalBilledCents    int64   `json:"total_billed_cents"`
	TotalCollectedCents int64   `json:"total_collected_cents"`
	CollectionRate      float64 `json:"collection_rate"`
	DueSoon             int     `json:"due_soon"`
}
