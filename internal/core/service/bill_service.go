package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
)

// dueSoonWindow is how far ahead of the due date a bill counts as "due soon"
// for the console summary and reminder scan.
const dueSoonWindow = 7 * 24 * time.Hour

// BillService serves the two bill views: the resident's own statement and
// the administrative console with derived collection figures.
type BillService struct {
	repo   ports.BillRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewBillService(repo ports.BillRepository, logger zerolog.Logger) *BillService {
	return &BillService{repo: repo, logger: logger, now: time.Now}
}

// ListForApartment returns the bills raised against a single apartment,
// which is all a resident ever sees.
func (s *BillService) ListForApartment(ctx context.Context, apartmentNumber string) ([]domain.Bill, error) {
	return s.repo.ListByApartment(ctx, apartmentNumber)
}

// Console returns every bill plus the derived summary used by the
// administrative bill console.
func (s *BillService) Console(ctx context.Context) ([]domain.Bill, ports.BillSummary, error) {
	bills, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, ports.BillSummary{}, err
	}
	return bills, Summarize(bills, s.now().UTC()), nil
}

// DueSoon returns the outstanding bills falling due within the reminder
// window, the input set for the reminder dispatcher.
func (s *BillService) DueSoon(ctx context.Context) ([]domain.Bill, error) {
	cutoff := s.now().UTC().Add(dueSoonWindow)
	bills, err := s.repo.ListOutstandingDueBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Int("count", len(bills)).Time("cutoff", cutoff).Msg("due-soon scan")
	return bills, nil
}

// Summarize derives the console figures from a bill set. Cancelled bills do
// not count towards the billed total; the collection rate is 0 when nothing
// was billed.
func Summarize(bills []domain.Bill, now time.Time) ports.BillSummary {
	var sum ports.BillSummary
	for _, b := range bills {
		if b.Status == domain.BillCancelled {
			continue
		}
		sum.TotalBilledCents += b.AmountCents
		if b.Status == domain.BillPaid {
			sum.TotalCollectedCents += b.AmountCents
		}
		if b.Outstanding() && b.DueDate.After(now) && b.DueDate.Sub(now) <= dueSoonWindow {
			sum.DueSoon++
		}
	}
	if sum.TotalBilledCents > 0 {
		sum.CollectionRate = 100 * float64(sum.TotalCollectedCents) / float64(sum.TotalBilledCents)
	}
	return sum
}
