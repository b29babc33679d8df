package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawRow is one record from an uploaded schedule, still in cell form.
// It carries no invariants; malformed rows are expected and dropped later.
type RawRow struct {
	Line     int // 1-based source row, for skip diagnostics
	Date     Value
	Time     Value
	Duration Value
	HomeTeam string
	AwayTeam string
	Location string
}

// Event is one scheduled game with a normalized start/end interval.
// Events are immutable once built. The original date/time/duration cells are
// retained in display form for tables and export descriptions.
type Event struct {
	Start time.Time
	End   time.Time

	HomeTeam string
	AwayTeam string
	Location string

	RawDate         string
	RawTime         string
	DurationMinutes float64
}

// SkippedRow records why a raw row was excluded from the normalized table.
type SkippedRow struct {
	Line   int
	Reason string
}

// Result is the outcome of normalizing an upload: the kept events plus the
// rows that were dropped. Dropped rows are never fatal; season spreadsheets
// routinely contain stray incomplete lines.
type Result struct {
	Events  []Event
	Skipped []SkippedRow
}

// Normalize converts raw rows into events, preserving input order. Team names
// are trimmed, start comes from the date+time cells, and end is start plus the
// duration in minutes. Rows whose start can't be parsed or whose duration
// isn't numeric are dropped with a reason. Sorting is the caller's job.
func Normalize(rows []RawRow) Result {
	var res Result
	for _, row := range rows {
		start, ok := ParseStart(row.Date, row.Time)
		if !ok {
			res.Skipped = append(res.Skipped, SkippedRow{Line: row.Line, Reason: "unparseable date/time"})
			continue
		}
		minutes, ok := coerceMinutes(row.Duration)
		if !ok {
			res.Skipped = append(res.Skipped, SkippedRow{Line: row.Line, Reason: "unparseable duration"})
			continue
		}
		res.Events = append(res.Events, Event{
			Start:           start,
			End:             start.Add(time.Duration(minutes * float64(time.Minute))),
			HomeTeam:        strings.TrimSpace(row.HomeTeam),
			AwayTeam:        strings.TrimSpace(row.AwayTeam),
			Location:        row.Location,
			RawDate:         Text(row.Date),
			RawTime:         Text(row.Time),
			DurationMinutes: minutes,
		})
	}
	return res
}

// coerceMinutes reads a duration cell as a float number of minutes.
func coerceMinutes(v Value) (float64, bool) {
	switch v := v.(type) {
	case NumberValue:
		return float64(v), true
	case StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Summary is the "Home vs Away" display name of a game.
func (e Event) Summary() string {
	return fmt.Sprintf("%s vs %s", e.HomeTeam, e.AwayTeam)
}
