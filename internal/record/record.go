// Package record turns scraped attendance rows into typed daily records.
package record

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// DateLayout is the layout of the date cell (DD/MM/YYYY)
	DateLayout = "02/01/2006"
	// ClockLayout is the layout of the entry/exit cells (HH:MM:SS)
	ClockLayout = "15:04:05"
	// MinCells is the minimum number of cells a row must carry
	MinCells = 5
)

var (
	// ErrShortRow is returned for rows with fewer than MinCells cells
	ErrShortRow = errors.New("row has fewer than 5 cells")
	// ErrIncompleteRow is returned when neither entry/exit pair is complete
	ErrIncompleteRow = errors.New("row has no complete entry/exit pair")
)

// TimeOfDay is a wall-clock time read from the portal.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseClock parses an HH:MM:SS cell.
func ParseClock(s string) (TimeOfDay, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q (expected HH:MM:SS): %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// Minutes returns the minute of the day. Seconds are ignored.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// DailyRecord is one attendance row of the timesheet.
// A nil clock means the cell was empty.
type DailyRecord struct {
	Date   time.Time
	Entry1 *TimeOfDay
	Exit1  *TimeOfDay
	Entry2 *TimeOfDay
	Exit2  *TimeOfDay
}

// FirstPairComplete reports whether Entry1 and Exit1 are both present.
func (r DailyRecord) FirstPairComplete() bool {
	return r.Entry1 != nil && r.Exit1 != nil
}

// SecondPairComplete reports whether Entry2 and Exit2 are both present.
func (r DailyRecord) SecondPairComplete() bool {
	return r.Entry2 != nil && r.Exit2 != nil
}

// Valid reports whether at least one pair is complete.
func (r DailyRecord) Valid() bool {
	return r.FirstPairComplete() || r.SecondPairComplete()
}

// HasSecondExit reports whether the second exit cell was filled,
// regardless of the second entry.
func (r DailyRecord) HasSecondExit() bool {
	return r.Exit2 != nil
}

// WorkedMinutes sums exit minus entry over the complete pairs.
func (r DailyRecord) WorkedMinutes() int {
	total := 0
	if r.FirstPairComplete() {
		total += r.Exit1.Minutes() - r.Entry1.Minutes()
	}
	if r.SecondPairComplete() {
		total += r.Exit2.Minutes() - r.Entry2.Minutes()
	}
	return total
}

// ParseDate parses a DD/MM/YYYY cell into a UTC midnight date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected DD/MM/YYYY): %w", s, err)
	}
	return t, nil
}

// ParseRow converts the text cells of one table row into a DailyRecord.
// Cells are: date, entry 1, exit 1, entry 2, exit 2. Empty clock cells are absent.
func ParseRow(cells []string) (DailyRecord, error) {
	if len(cells) < MinCells {
		return DailyRecord{}, fmt.Errorf("%w (got %d)", ErrShortRow, len(cells))
	}

	date, err := ParseDate(strings.TrimSpace(cells[0]))
	if err != nil {
		return DailyRecord{}, err
	}

	clocks := make([]*TimeOfDay, 4)
	for i := range clocks {
		text := strings.TrimSpace(cells[i+1])
		if text == "" {
			continue
		}
		c, err := ParseClock(text)
		if err != nil {
			return DailyRecord{}, fmt.Errorf("cell %d: %w", i+2, err)
		}
		clocks[i] = &c
	}

	r := DailyRecord{
		Date:   date,
		Entry1: clocks[0],
		Exit1:  clocks[1],
		Entry2: clocks[2],
		Exit2:  clocks[3],
	}
	if !r.Valid() {
		return DailyRecord{}, ErrIncompleteRow
	}
	return r, nil
}

// ParseWarning describes a row that was skipped.
type ParseWarning struct {
	Row     int    // Row number in the table (1-indexed)
	Content string // Cells joined with " | "
	Error   string // Why the row was skipped
}

// ParseResult holds the parsed records and the skipped rows.
type ParseResult struct {
	Records  []DailyRecord
	Warnings []ParseWarning
}

// ParseRows parses every row, collecting failures as warnings.
// Only the first record of a given date is kept.
func ParseRows(rows [][]string) ParseResult {
	result := ParseResult{
		Records:  []DailyRecord{},
		Warnings: []ParseWarning{},
	}
	seen := make(map[time.Time]bool)

	for i, cells := range rows {
		r, err := ParseRow(cells)
		if err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				Row:     i + 1,
				Content: strings.Join(cells, " | "),
				Error:   err.Error(),
			})
			continue
		}
		if seen[r.Date] {
			result.Warnings = append(result.Warnings, ParseWarning{
				Row:     i + 1,
				Content: strings.Join(cells, " | "),
				Error:   fmt.Sprintf("duplicate date %s", r.Date.Format(DateLayout)),
			})
			continue
		}
		seen[r.Date] = true
		result.Records = append(result.Records, r)
	}

	return result
}

// SortByDate orders records chronologically in place.
func SortByDate(records []DailyRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}
