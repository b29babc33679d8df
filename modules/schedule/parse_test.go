package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartFormatEquivalence(t *testing.T) {
	// All three supported clock encodings must resolve to the same instant.
	for _, clock := range []string{"3:00 PM", "15:00", "15:00:00"} {
		t.Run(clock, func(t *testing.T) {
			got, ok := ParseStart(StringValue("2024-05-01"), StringValue(clock))
			require.True(t, ok)
			assert.Equal(t, time.Date(2024, 5, 1, 15, 0, 0, 0, time.Local), got)
		})
	}
}

func TestParseStartDateLayouts(t *testing.T) {
	tests := []struct {
		date string
		want time.Time
	}{
		{"2024-05-01", time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)},
		{"5/1/2024", time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)},
		{"05/01/2024", time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)},
		{"2024/05/01", time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)},
		{"May 1, 2024", time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)},
		{"2024-05-01 00:00:00", time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)},
	}
	for _, tc := range tests {
		t.Run(tc.date, func(t *testing.T) {
			got, ok := ParseStart(StringValue(tc.date), StringValue("9:30 AM"))
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseStartVariants(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

	t.Run("timestamp date cell", func(t *testing.T) {
		got, ok := ParseStart(TimestampValue(day), StringValue("15:00"))
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 5, 1, 15, 0, 0, 0, time.Local), got)
	})

	t.Run("timestamp time cell contributes only its time of day", func(t *testing.T) {
		ts := time.Date(1999, 1, 7, 15, 0, 0, 0, time.Local)
		got, ok := ParseStart(StringValue("2024-05-01"), TimestampValue(ts))
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 5, 1, 15, 0, 0, 0, time.Local), got)
	})

	t.Run("clock value passes through", func(t *testing.T) {
		got, ok := ParseStart(StringValue("2024-05-01"), ClockValue{Hour: 15, Minute: 45, Second: 30})
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 5, 1, 15, 45, 30, 0, time.Local), got)
	})

	t.Run("unsupported time cell type fails", func(t *testing.T) {
		_, ok := ParseStart(StringValue("2024-05-01"), NumberValue(15))
		assert.False(t, ok)
	})

	t.Run("unsupported date cell type fails", func(t *testing.T) {
		_, ok := ParseStart(NumberValue(45000), StringValue("15:00"))
		assert.False(t, ok)

		_, ok = ParseStart(ClockValue{Hour: 9}, StringValue("15:00"))
		assert.False(t, ok)
	})
}

func TestParseStartTotalContract(t *testing.T) {
	// The parser never errors: every input pair maps to a timestamp or ok=false.
	tests := []struct {
		name  string
		date  Value
		clock Value
	}{
		{"nil date", nil, StringValue("15:00")},
		{"nil time", StringValue("2024-05-01"), nil},
		{"both nil", nil, nil},
		{"empty date", StringValue(""), StringValue("15:00")},
		{"empty time", StringValue("2024-05-01"), StringValue("   ")},
		{"garbage date", StringValue("not a date"), StringValue("15:00")},
		{"garbage time", StringValue("2024-05-01"), StringValue("half past nine")},
		{"misformatted time", StringValue("2024-05-01"), StringValue("3 PM")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseStart(tc.date, tc.clock)
			assert.False(t, ok)
			assert.True(t, got.IsZero())
		})
	}
}

func TestParseStartTrimsWhitespace(t *testing.T) {
	got, ok := ParseStart(StringValue(" 2024-05-01 "), StringValue(" 3:00 PM "))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 1, 15, 0, 0, 0, time.Local), got)
}
