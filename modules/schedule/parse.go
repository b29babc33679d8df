package schedule

import (
	"strings"
	"time"
)

// Date layouts are tried in order. Season spreadsheets come from several
// league tools, so both ISO and US slash dates show up in the wild.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Clock layouts are tried in order; the first match wins.
var clockLayouts = []string{
	"3:04 PM",
	"15:04",
	"15:04:05",
}

// ParseStart combines a date cell and a time cell into a single wall-clock
// timestamp. The contract is total: every input pair maps to a timestamp or
// ok=false, never an error. Missing cells, unparseable text, and cell types
// that can't represent the needed component all report ok=false so the caller
// can drop the row.
func ParseStart(date, clock Value) (time.Time, bool) {
	if date == nil || clock == nil {
		return time.Time{}, false
	}
	day, ok := coerceDate(date)
	if !ok {
		return time.Time{}, false
	}
	tod, ok := coerceClock(clock)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour, tod.Minute, tod.Second, 0, time.Local), true
}

// coerceDate extracts a calendar date from a cell.
func coerceDate(v Value) (time.Time, bool) {
	switch v := v.(type) {
	case StringValue:
		s := strings.TrimSpace(string(v))
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case TimestampValue:
		return time.Time(v), true
	}
	return time.Time{}, false
}

// coerceClock extracts a time of day from a cell. A ClockValue passes through
// untouched; a timestamp contributes only its time-of-day component. Anything
// else is unsupported and fails the parse rather than guessing.
func coerceClock(v Value) (ClockValue, bool) {
	switch v := v.(type) {
	case StringValue:
		s := strings.TrimSpace(string(v))
		if s == "" {
			return ClockValue{}, false
		}
		for _, layout := range clockLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return ClockValue{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, true
			}
		}
		return ClockValue{}, false
	case TimestampValue:
		t := time.Time(v)
		return ClockValue{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, true
	case ClockValue:
		return v, true
	}
	return ClockValue{}, false
}
