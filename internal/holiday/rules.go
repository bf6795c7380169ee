package holiday

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/xolan/ponto/internal/calendar"
	"github.com/xolan/ponto/internal/timeutil"
)

// RuleSource expands recurring holidays written as RRULEs, e.g.
// "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25".
type RuleSource struct {
	rules []*rrule.RRule
}

// ParseRules parses RRULE strings. An optional "RRULE:" prefix is accepted.
func ParseRules(raw []string) (*RuleSource, error) {
	src := &RuleSource{}
	for _, r := range raw {
		s := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(r)), "RRULE:")
		if s == "" {
			continue
		}
		rule, err := rrule.StrToRRule(s)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday rule %q: %w", r, err)
		}
		src.rules = append(src.rules, rule)
	}
	return src, nil
}

// Len returns the number of rules.
func (s *RuleSource) Len() int {
	return len(s.rules)
}

// Holidays implements Source.
func (s *RuleSource) Holidays(_ context.Context, year int, month time.Month) (calendar.HolidaySet, error) {
	from := timeutil.MakeDate(year, month, 1)
	to := timeutil.MakeDate(year, month, timeutil.DaysIn(year, month))

	out := calendar.HolidaySet{}
	for _, rule := range s.rules {
		// Rules without DTSTART would start at parse time; anchor them far
		// enough back that yearly rules cover the requested month.
		opts := rule.OrigOptions
		if opts.Dtstart.IsZero() {
			opts.Dtstart = time.Date(year-1, time.January, 1, 0, 0, 0, 0, time.UTC)
		}
		r, err := rrule.NewRRule(opts)
		if err != nil {
			return nil, err
		}
		for _, d := range r.Between(from, to, true) {
			out.Add(d)
		}
	}
	return out, nil
}
