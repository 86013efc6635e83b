package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// maxCSVText keeps single cells readable in spreadsheets
const maxCSVText = 200

// csvFormatter formats the result as one row per finding
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	if err := checkReport(report); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write([]string{"Kind", "Index", "Text"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	records := [][]string{
		{"score", "0", strconv.Itoa(report.Result.Score)},
		{"grade", "0", report.Result.Label()},
	}
	for i, item := range report.Result.Improvements {
		records = append(records, []string{"improvement", strconv.Itoa(i + 1), singleLine(item, maxCSVText)})
	}
	for i, item := range report.Result.UnclearParts {
		records = append(records, []string{"unclear", strconv.Itoa(i + 1), singleLine(item, maxCSVText)})
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
