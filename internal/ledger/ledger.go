// Package ledger computes the hour balance of a month of attendance records.
package ledger

import (
	"errors"
	"time"

	"github.com/xolan/ponto/internal/calendar"
	"github.com/xolan/ponto/internal/record"
	"github.com/xolan/ponto/internal/timeutil"
)

const (
	// FullTimeHours is the daily target when a second shift is recorded
	FullTimeHours = 8
	// PartTimeHours is the daily target otherwise
	PartTimeHours = 6
)

// ErrNoRecords is returned when there is nothing to account for.
var ErrNoRecords = errors.New("no valid attendance records")

// DailyBalance is the signed difference between worked and target minutes of a day.
type DailyBalance struct {
	Date    time.Time
	Minutes int
}

// Hours returns the balance in decimal hours.
func (b DailyBalance) Hours() float64 {
	return float64(b.Minutes) / 60
}

// Summary aggregates a month.
type Summary struct {
	Year  int
	Month time.Month

	PeriodStart time.Time
	PeriodEnd   time.Time

	// TargetHours is the daily target, 6 or 8
	TargetHours int

	// BusinessDays is WorkedDays + MissingDays, the days accounted for
	BusinessDays int
	WorkedDays   int
	MissingDays  int
	// BusinessDaysToDate is the calendar count of business days up to today
	BusinessDaysToDate int

	WorkedMinutes   int
	ExpectedMinutes int
	BalanceMinutes  int

	MonthBusinessDays int
}

// WorkedHours returns the worked time in decimal hours.
func (s Summary) WorkedHours() float64 { return float64(s.WorkedMinutes) / 60 }

// ExpectedHours returns the expected time in decimal hours.
func (s Summary) ExpectedHours() float64 { return float64(s.ExpectedMinutes) / 60 }

// BalanceHours returns the overall balance in decimal hours.
func (s Summary) BalanceHours() float64 { return float64(s.BalanceMinutes) / 60 }

// MonthProjectionHours is the target for every business day of the month.
func (s Summary) MonthProjectionHours() int {
	return s.MonthBusinessDays * s.TargetHours
}

// Ledger is the full result of Compute.
type Ledger struct {
	Summary  Summary
	Records  []record.DailyRecord
	Balances []DailyBalance
	Missing  []time.Time
}

// DailyTarget returns 8 when any record has a second exit, 6 otherwise.
// The target applies to every day of the set.
func DailyTarget(records []record.DailyRecord) int {
	for _, r := range records {
		if r.HasSecondExit() {
			return FullTimeHours
		}
	}
	return PartTimeHours
}

// MissingDays lists the business days of the month strictly before today
// that have no record.
func MissingDays(year int, month time.Month, records []record.DailyRecord, holidays calendar.HolidaySet, today time.Time) []time.Time {
	today = timeutil.Date(today)
	recorded := make(map[time.Time]bool, len(records))
	for _, r := range records {
		recorded[timeutil.Date(r.Date)] = true
	}

	lastDay := calendar.LastDayThrough(year, month, today)
	var missing []time.Time
	for _, d := range calendar.BusinessDates(year, month, holidays, lastDay) {
		if !d.Before(today) || recorded[d] {
			continue
		}
		missing = append(missing, d)
	}
	return missing
}

// Compute accounts the records of one month. The month is taken from the
// earliest record; today bounds the missing-day search.
func Compute(records []record.DailyRecord, holidays calendar.HolidaySet, today time.Time) (Ledger, error) {
	if len(records) == 0 {
		return Ledger{}, ErrNoRecords
	}

	sorted := make([]record.DailyRecord, len(records))
	copy(sorted, records)
	record.SortByDate(sorted)

	first := sorted[0].Date
	year, month := first.Year(), first.Month()
	target := DailyTarget(sorted)
	targetMinutes := target * 60

	balances := make([]DailyBalance, 0, len(sorted))
	worked := 0
	for _, r := range sorted {
		m := r.WorkedMinutes()
		worked += m
		balances = append(balances, DailyBalance{Date: r.Date, Minutes: m - targetMinutes})
	}

	missing := MissingDays(year, month, sorted, holidays, today)
	considered := len(sorted) + len(missing)
	expected := considered * targetMinutes

	return Ledger{
		Summary: Summary{
			Year:               year,
			Month:              month,
			PeriodStart:        first,
			PeriodEnd:          sorted[len(sorted)-1].Date,
			TargetHours:        target,
			BusinessDays:       considered,
			WorkedDays:         len(sorted),
			MissingDays:        len(missing),
			BusinessDaysToDate: calendar.BusinessDaysThrough(year, month, holidays, today),
			WorkedMinutes:      worked,
			ExpectedMinutes:    expected,
			BalanceMinutes:     worked - expected,
			MonthBusinessDays:  calendar.BusinessDays(year, month, holidays),
		},
		Records:  sorted,
		Balances: balances,
		Missing:  missing,
	}, nil
}
