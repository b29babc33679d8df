package calendar

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pitchside/pitchside/modules/schedule"
)

// WriteICalFeed writes an iCal feed for the given events to the writer, one
// VEVENT per event in input order. Event timestamps are emitted as floating
// local time (no UTC suffix); consuming calendar apps interpret them as
// wall-clock time, which matches how the schedule reads.
//
// UIDs are positional, so they are unique and stable within one export but
// not across exports.
func WriteICalFeed(w io.Writer, events []schedule.Event, hostname string) error {
	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintln(w, "PRODID:-//Soccer Schedule//EN")

	stamp := time.Now().UTC()
	for i, e := range events {
		writeVEvent(w, e, i, stamp, hostname)
	}

	fmt.Fprintln(w, "END:VCALENDAR")
	return nil
}

// writeVEvent writes a single VEVENT to the writer.
func writeVEvent(w io.Writer, e schedule.Event, seq int, stamp time.Time, hostname string) {
	fmt.Fprintln(w, "BEGIN:VEVENT")
	fmt.Fprintf(w, "UID:event-%d@%s\n", seq, hostname)
	fmt.Fprintf(w, "DTSTAMP:%s\n", stamp.Format("20060102T150405Z"))
	fmt.Fprintf(w, "DTSTART:%s\n", formatICalFloating(e.Start))
	fmt.Fprintf(w, "DTEND:%s\n", formatICalFloating(e.End))
	fmt.Fprintf(w, "SUMMARY:%s\n", escapeICalText(e.Summary()))
	fmt.Fprintf(w, "LOCATION:%s\n", escapeICalText(e.Location))
	fmt.Fprintf(w, "DESCRIPTION:%s\n", escapeICalText(description(e)))
	fmt.Fprintln(w, "END:VEVENT")
}

// description reconstructs a human-readable note from the original
// date/time/duration cells of the source row.
func description(e schedule.Event) string {
	minutes := strconv.FormatFloat(e.DurationMinutes, 'f', -1, 64)
	return fmt.Sprintf("Game scheduled on %s at %s, duration: %s minutes.", e.RawDate, e.RawTime, minutes)
}

// formatICalFloating formats a time in iCal local/floating format (YYYYMMDDTHHMMSS).
func formatICalFloating(t time.Time) string {
	return t.Format("20060102T150405")
}

// escapeICalText escapes special characters in iCal text fields.
func escapeICalText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
