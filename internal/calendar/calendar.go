// Package calendar resolves business days of a month given a holiday set.
package calendar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/ponto/internal/timeutil"
)

// HolidaySet is a set of non-working calendar dates.
type HolidaySet map[time.Time]struct{}

// NewHolidaySet builds a set from the given dates.
func NewHolidaySet(dates ...time.Time) HolidaySet {
	s := make(HolidaySet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

// FromDays builds a set from days of the given month.
func FromDays(year int, month time.Month, days []int) HolidaySet {
	s := make(HolidaySet, len(days))
	for _, d := range days {
		s.Add(timeutil.MakeDate(year, month, d))
	}
	return s
}

// Add inserts the calendar date of t.
func (s HolidaySet) Add(t time.Time) {
	s[timeutil.Date(t)] = struct{}{}
}

// Contains reports whether the calendar date of t is a holiday.
func (s HolidaySet) Contains(t time.Time) bool {
	_, ok := s[timeutil.Date(t)]
	return ok
}

// Union adds every date of other to s.
func (s HolidaySet) Union(other HolidaySet) {
	for d := range other {
		s[d] = struct{}{}
	}
}

// Dates returns the holidays in chronological order.
func (s HolidaySet) Dates() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// IsBusinessDay reports whether t is Monday-Friday and not a holiday.
func IsBusinessDay(t time.Time, holidays HolidaySet) bool {
	return !timeutil.IsWeekend(t) && !holidays.Contains(t)
}

// BusinessDays counts the business days of the whole month.
func BusinessDays(year int, month time.Month, holidays HolidaySet) int {
	return len(BusinessDates(year, month, holidays, timeutil.DaysIn(year, month)))
}

// BusinessDaysThrough counts business days from the 1st of the month up to and
// including through. A through date after the month counts the whole month;
// one before the month counts nothing.
func BusinessDaysThrough(year int, month time.Month, holidays HolidaySet, through time.Time) int {
	return len(BusinessDates(year, month, holidays, LastDayThrough(year, month, through)))
}

// LastDayThrough clamps through to a day-of-month of the given month.
// Returns 0 when through is before the month.
func LastDayThrough(year int, month time.Month, through time.Time) int {
	through = timeutil.Date(through)
	first := timeutil.MakeDate(year, month, 1)
	if through.Before(first) {
		return 0
	}
	if through.Year() != year || through.Month() != month {
		return timeutil.DaysIn(year, month)
	}
	return through.Day()
}

// BusinessDates lists the business days from the 1st to lastDay (inclusive).
func BusinessDates(year int, month time.Month, holidays HolidaySet, lastDay int) []time.Time {
	var out []time.Time
	for day := 1; day <= lastDay; day++ {
		d := timeutil.MakeDate(year, month, day)
		if IsBusinessDay(d, holidays) {
			out = append(out, d)
		}
	}
	return out
}

// ParseDayList parses a comma-separated list of days of the month, e.g. "3,4, 5".
// Blank items are ignored. Every day must exist in the given month.
func ParseDayList(input string, year int, month time.Month) ([]int, error) {
	last := timeutil.DaysIn(year, month)
	var days []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("'%s' não é um número", part)
		}
		if day < 1 || day > last {
			return nil, fmt.Errorf("dia %d inválido para o mês %d", day, int(month))
		}
		days = append(days, day)
	}
	return days, nil
}
