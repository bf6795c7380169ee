package report

import (
	"fmt"
	"math"

	"github.com/xolan/ponto/internal/record"
)

// EmptyClock is shown for an absent entry or exit
const EmptyClock = "--:--"

// FormatClock formats a clock as HH:MM, or EmptyClock when absent.
func FormatClock(t *record.TimeOfDay) string {
	if t == nil {
		return EmptyClock
	}
	return t.String()
}

// FormatMinutes formats the absolute value of a minute count as HH:MM.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = -minutes
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDecimalHours formats decimal hours as HH:MM, rounding the fraction
// to the nearest minute. The sign is dropped.
func FormatDecimalHours(hours float64) string {
	hours = math.Abs(hours)
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// OverallLabel names the sign of the period balance.
func OverallLabel(minutes int) string {
	if minutes >= 0 {
		return "a favor"
	}
	return "em débito"
}

// DailyLabel names the sign of a day balance.
func DailyLabel(minutes int) string {
	if minutes >= 0 {
		return "excedente"
	}
	return "faltante"
}
