package report

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/xolan/ponto/internal/record"
)

// ErrNotDetailLine is returned by ParseDetailLine for lines of another section.
var ErrNotDetailLine = errors.New("not a detail line")

var detailLineRe = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{4}): (\S+) ▶ (\S+) \| (\S+) ▶ (\S+) \| Saldo: (\d+):(\d{2}) \((excedente|faltante)\)$`)

// ParseDetailLine reads back a line produced by DetailLine. The balance is
// returned in signed minutes.
func ParseDetailLine(line string) (record.DailyRecord, int, error) {
	m := detailLineRe.FindStringSubmatch(line)
	if m == nil {
		return record.DailyRecord{}, 0, ErrNotDetailLine
	}

	date, err := record.ParseDate(m[1])
	if err != nil {
		return record.DailyRecord{}, 0, err
	}

	clocks := make([]*record.TimeOfDay, 4)
	for i := range clocks {
		text := m[i+2]
		if text == EmptyClock {
			continue
		}
		c, err := parseShortClock(text)
		if err != nil {
			return record.DailyRecord{}, 0, err
		}
		clocks[i] = &c
	}

	hours, _ := strconv.Atoi(m[6])
	minutes, _ := strconv.Atoi(m[7])
	balance := hours*60 + minutes
	if m[8] == "faltante" {
		balance = -balance
	}

	return record.DailyRecord{
		Date:   date,
		Entry1: clocks[0],
		Exit1:  clocks[1],
		Entry2: clocks[2],
		Exit2:  clocks[3],
	}, balance, nil
}

func parseShortClock(s string) (record.TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || len(s) != 5 || h > 23 || m > 59 {
		return record.TimeOfDay{}, fmt.Errorf("invalid clock %q", s)
	}
	return record.TimeOfDay{Hour: h, Minute: m}, nil
}
