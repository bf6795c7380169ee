// Package holiday provides the sources of non-working days for a month:
// an interactive prompt, a fixed list, and recurring rules from the config.
package holiday

import (
	"context"
	"errors"
	"time"

	"github.com/xolan/ponto/internal/calendar"
)

// ErrCanceled is returned by an AskFunc when the user dismisses the prompt.
var ErrCanceled = errors.New("prompt canceled")

// Source yields the holidays of a month.
type Source interface {
	Holidays(ctx context.Context, year int, month time.Month) (calendar.HolidaySet, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, year int, month time.Month) (calendar.HolidaySet, error)

// Holidays implements Source.
func (f SourceFunc) Holidays(ctx context.Context, year int, month time.Month) (calendar.HolidaySet, error) {
	return f(ctx, year, month)
}

// Merge returns a Source yielding the union of all given sources.
func Merge(sources ...Source) Source {
	return SourceFunc(func(ctx context.Context, year int, month time.Month) (calendar.HolidaySet, error) {
		out := calendar.HolidaySet{}
		for _, s := range sources {
			if s == nil {
				continue
			}
			set, err := s.Holidays(ctx, year, month)
			if err != nil {
				return nil, err
			}
			out.Union(set)
		}
		return out, nil
	})
}

// StaticSource is a fixed comma-separated list of days, e.g. from a flag.
type StaticSource string

// Holidays implements Source.
func (s StaticSource) Holidays(_ context.Context, year int, month time.Month) (calendar.HolidaySet, error) {
	days, err := calendar.ParseDayList(string(s), year, month)
	if err != nil {
		return nil, err
	}
	return calendar.FromDays(year, month, days), nil
}
