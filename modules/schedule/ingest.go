package schedule

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Required columns, matched exactly. A schedule export that renames or drops
// one of these is not something we can silently repair.
var requiredColumns = []string{"DATE", "TIME", "DURATION", "HOME TEAM", "AWAY TEAM", "LOCATION"}

// ReadRows parses an uploaded schedule file into raw rows. The file extension
// picks the reader: .csv is read as comma-separated text, everything else is
// treated as an Excel workbook (first sheet). A missing required column is a
// fatal ingestion error; malformed data rows are passed through for the
// normalizer to judge.
func ReadRows(filename string, content []byte) ([]RawRow, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return readCSVRows(content)
	}
	return readWorkbookRows(content)
}

func readWorkbookRows(content []byte) ([]RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rowsFromRecords(rows)
}

func readCSVRows(content []byte) ([]RawRow, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1 // ragged rows are the normalizer's problem
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return rowsFromRecords(records)
}

func rowsFromRecords(records [][]string) ([]RawRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("schedule file is empty")
	}

	index := map[string]int{}
	for col, name := range records[0] {
		index[name] = col
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	rows := make([]RawRow, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, RawRow{
			Line:     i + 2, // 1-based, after the header row
			Date:     cellValue(record, index["DATE"]),
			Time:     cellValue(record, index["TIME"]),
			Duration: cellValue(record, index["DURATION"]),
			HomeTeam: cellText(record, index["HOME TEAM"]),
			AwayTeam: cellText(record, index["AWAY TEAM"]),
			Location: cellText(record, index["LOCATION"]),
		})
	}
	return rows, nil
}

// cellValue returns the cell as a tagged Value, or nil when the cell is
// missing or blank. Both readers deliver cells as text, so everything starts
// life as a StringValue; the parser decides what the text means.
func cellValue(record []string, col int) Value {
	s := cellText(record, col)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return StringValue(s)
}

func cellText(record []string, col int) string {
	if col >= len(record) {
		return ""
	}
	return record[col]
}
