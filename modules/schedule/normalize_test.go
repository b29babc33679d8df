package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	rows := []RawRow{
		{
			Line:     2,
			Date:     StringValue("2024-05-01"),
			Time:     StringValue("10:00 AM"),
			Duration: StringValue("60"),
			HomeTeam: "  Red  ",
			AwayTeam: " Blue",
			Location: "Field 1",
		},
	}

	res := Normalize(rows)
	require.Len(t, res.Events, 1)
	assert.Empty(t, res.Skipped)

	e := res.Events[0]
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local), e.Start)
	assert.Equal(t, time.Date(2024, 5, 1, 11, 0, 0, 0, time.Local), e.End)
	assert.Equal(t, "Red", e.HomeTeam)
	assert.Equal(t, "Blue", e.AwayTeam)
	assert.Equal(t, "Field 1", e.Location)
	assert.Equal(t, "2024-05-01", e.RawDate)
	assert.Equal(t, "10:00 AM", e.RawTime)
	assert.Equal(t, float64(60), e.DurationMinutes)
}

func TestNormalizeDropsMalformedRows(t *testing.T) {
	rows := []RawRow{
		{Line: 2, Date: StringValue("2024-05-01"), Time: StringValue("10:00 AM"), Duration: StringValue("60"), HomeTeam: "Red", AwayTeam: "Blue"},
		{Line: 3, Date: nil, Time: StringValue("10:00 AM"), Duration: StringValue("60"), HomeTeam: "Red", AwayTeam: "Green"},
		{Line: 4, Date: StringValue("2024-05-01"), Time: StringValue("sometime"), Duration: StringValue("60"), HomeTeam: "Red", AwayTeam: "Green"},
		{Line: 5, Date: StringValue("2024-05-01"), Time: StringValue("10:00 AM"), Duration: StringValue("an hour"), HomeTeam: "Red", AwayTeam: "Green"},
		{Line: 6, Date: StringValue("2024-05-01"), Time: StringValue("10:00 AM"), Duration: nil, HomeTeam: "Red", AwayTeam: "Green"},
	}

	res := Normalize(rows)
	require.Len(t, res.Events, 1)
	require.Len(t, res.Skipped, 4)

	assert.Equal(t, SkippedRow{Line: 3, Reason: "unparseable date/time"}, res.Skipped[0])
	assert.Equal(t, SkippedRow{Line: 4, Reason: "unparseable date/time"}, res.Skipped[1])
	assert.Equal(t, SkippedRow{Line: 5, Reason: "unparseable duration"}, res.Skipped[2])
	assert.Equal(t, SkippedRow{Line: 6, Reason: "unparseable duration"}, res.Skipped[3])
}

func TestNormalizeDurationCoercion(t *testing.T) {
	t.Run("numeric cell", func(t *testing.T) {
		res := Normalize([]RawRow{{
			Date: StringValue("2024-05-01"), Time: StringValue("10:00 AM"), Duration: NumberValue(45),
		}})
		require.Len(t, res.Events, 1)
		assert.Equal(t, time.Date(2024, 5, 1, 10, 45, 0, 0, time.Local), res.Events[0].End)
	})

	t.Run("fractional minutes", func(t *testing.T) {
		res := Normalize([]RawRow{{
			Date: StringValue("2024-05-01"), Time: StringValue("10:00 AM"), Duration: StringValue("90.5"),
		}})
		require.Len(t, res.Events, 1)
		assert.Equal(t, time.Date(2024, 5, 1, 11, 30, 30, 0, time.Local), res.Events[0].End)
	})

	t.Run("padded text", func(t *testing.T) {
		res := Normalize([]RawRow{{
			Date: StringValue("2024-05-01"), Time: StringValue("10:00 AM"), Duration: StringValue(" 60 "),
		}})
		require.Len(t, res.Events, 1)
	})
}

func TestNormalizePreservesInputOrder(t *testing.T) {
	rows := []RawRow{
		{Date: StringValue("2024-05-02"), Time: StringValue("10:00 AM"), Duration: StringValue("60"), HomeTeam: "B", AwayTeam: "C"},
		{Date: StringValue("2024-05-01"), Time: StringValue("10:00 AM"), Duration: StringValue("60"), HomeTeam: "A", AwayTeam: "B"},
	}
	res := Normalize(rows)
	require.Len(t, res.Events, 2)
	assert.Equal(t, "B", res.Events[0].HomeTeam)
	assert.Equal(t, "A", res.Events[1].HomeTeam)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	rows := []RawRow{
		{Line: 2, Date: StringValue("2024-05-01"), Time: StringValue("10:00 AM"), Duration: StringValue("60"), HomeTeam: "Red", AwayTeam: "Blue", Location: "Field 1"},
		{Line: 3, Date: StringValue("bogus"), Time: StringValue("10:00 AM"), Duration: StringValue("60"), HomeTeam: "Red", AwayTeam: "Green"},
	}
	assert.Equal(t, Normalize(rows), Normalize(rows))
}
