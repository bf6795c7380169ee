package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xolan/ponto/internal/holiday"
	"github.com/xolan/ponto/internal/ledger"
	"github.com/xolan/ponto/internal/portal"
	"github.com/xolan/ponto/internal/record"
	"github.com/xolan/ponto/internal/report"
)

// ErrHolidays wraps failures of the holiday source
var ErrHolidays = errors.New("resolving holidays")

// BalanceService computes the monthly hour balance.
type BalanceService struct {
	records  portal.Source
	holidays holiday.Source
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(records portal.Source, holidays holiday.Source) *BalanceService {
	return &BalanceService{records: records, holidays: holidays}
}

// BalanceReport is the outcome of a run.
type BalanceReport struct {
	Ledger   ledger.Ledger
	Warnings []record.ParseWarning
	Text     string
}

// Build collects the records, asks for the holidays of their month and
// renders the report. today is the cutoff for missing days.
//
// When no valid record is found it returns ledger.ErrNoRecords together with
// a report carrying the row warnings; holidays are not asked in that case.
func (s *BalanceService) Build(ctx context.Context, today time.Time) (*BalanceReport, error) {
	parsed, err := s.records.Records(ctx)
	if err != nil {
		return nil, err
	}

	out := &BalanceReport{Warnings: parsed.Warnings}
	if len(parsed.Records) == 0 {
		return out, ledger.ErrNoRecords
	}

	month := parsed.Records[0].Date
	for _, r := range parsed.Records[1:] {
		if r.Date.Before(month) {
			month = r.Date
		}
	}

	holidays, err := s.holidays.Holidays(ctx, month.Year(), month.Month())
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrHolidays, err)
	}

	l, err := ledger.Compute(parsed.Records, holidays, today)
	if err != nil {
		return out, err
	}

	out.Ledger = l
	out.Text = report.Render(l)
	return out, nil
}
