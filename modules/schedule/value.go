package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// Value is a single raw spreadsheet cell. Source files mix text, real
// date/time cells, and numbers in the same columns, so the ingestion layer
// tags each cell with its concrete representation instead of guessing later.
type Value interface {
	isValue()
}

// StringValue is a plain text cell.
type StringValue string

// TimestampValue is a cell that held a full date+time value.
type TimestampValue time.Time

// ClockValue is a cell that held a bare time of day.
type ClockValue struct {
	Hour, Minute, Second int
}

// NumberValue is a numeric cell.
type NumberValue float64

func (StringValue) isValue()    {}
func (TimestampValue) isValue() {}
func (ClockValue) isValue()     {}
func (NumberValue) isValue()    {}

// Text returns the display form of a cell, used to echo the original
// spreadsheet content back in tables and export descriptions.
func Text(v Value) string {
	switch v := v.(type) {
	case StringValue:
		return string(v)
	case TimestampValue:
		return time.Time(v).Format("2006-01-02 15:04")
	case ClockValue:
		return fmt.Sprintf("%02d:%02d", v.Hour, v.Minute)
	case NumberValue:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	}
	return ""
}
