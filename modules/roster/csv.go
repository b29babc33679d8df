package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pitchside/pitchside/modules/schedule"
)

// header is the fixed 17-column roster-import schema. The contact, location
// detail, duty roster, and notes columns are required by the import target
// but we have no data for them, so they are emitted empty.
var header = []string{
	"Date",
	"Time",
	"Duration (HH:MM)",
	"Arrival Time (Minutes)",
	"Name",
	"Opponent Name",
	"Opponent Contact Name",
	"Opponent Contact Phone Number",
	"Opponent Contact E-mail Address",
	"Location Name",
	"Location Address",
	"Location URL",
	"Location Details",
	"Home or Away",
	"Uniform",
	"Duty Roster",
	"Notes",
}

// arrivalMinutes is a placeholder policy, not derived from real team data.
const arrivalMinutes = 30

// WriteRosterCSV writes a roster-import spreadsheet for one team's view of
// the given events. The home/away flag and opponent are derived relative to
// the perspective team.
func WriteRosterCSV(w io.Writer, events []schedule.Event, perspective string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, e := range events {
		flag, opponent, uniform := "a", e.HomeTeam, "Away uniform"
		if e.HomeTeam == perspective {
			flag, opponent, uniform = "h", e.AwayTeam, "Home uniform"
		}
		record := []string{
			e.Start.Format("1/2/2006"),
			e.Start.Format("3:04 PM"),
			formatDuration(e.DurationMinutes),
			strconv.Itoa(arrivalMinutes),
			e.Summary(),
			opponent,
			"", "", "",
			e.Location,
			"", "", "",
			flag,
			uniform,
			"", "",
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatDuration renders a minute count as an hours:minutes string,
// e.g. 90 -> "1:30".
func formatDuration(minutes float64) string {
	total := int(minutes)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
