package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrDateFormat is returned when a date string matches none of the accepted formats.
var ErrDateFormat = errors.New("unrecognized date format")

// DateLayout is the canonical layout used when writing dates to the ledger.
const DateLayout = "2006-01-02"

// dateLayouts is ordered and first-match-wins. The two slash layouts are
// ambiguous whenever both day and month are <= 12 (e.g. "03/04/2024"), so
// day-first always takes precedence over month-first. Reordering this list
// silently changes which date such rows land on.
var dateLayouts = []string{
	DateLayout,   // 2024-06-03
	"02/01/2006", // 03/06/2024
	"01/02/2006", // 06/03/2024
}

// ParseDate parses free-form date text against the accepted layouts in order
// and returns the first successful parse, normalized to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, s)
}

// WeekSpan is a closed Monday-to-Sunday date interval.
type WeekSpan struct {
	Start time.Time
	End   time.Time
}

// WeekOf returns the Monday-to-Sunday span containing d.
// Start is always a Monday, End = Start + 6 days, and Start <= d <= End.
func WeekOf(d time.Time) WeekSpan {
	d = midnight(d)
	offset := (int(d.Weekday()) + 6) % 7 // days since Monday; Sunday counts as 6
	start := d.AddDate(0, 0, -offset)
	return WeekSpan{Start: start, End: start.AddDate(0, 0, 6)}
}

// Contains reports whether t's calendar date falls within the span,
// inclusive on both ends.
func (w WeekSpan) Contains(t time.Time) bool {
	t = midnight(t)
	return !t.Before(w.Start) && !t.After(w.End)
}

// midnight truncates t to its calendar date in UTC so that spans and parsed
// row dates compare as civil dates regardless of source timezone.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
