package formatter

import (
	"encoding/json"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(report *Report) ([]byte, error) {
	if err := checkReport(report); err != nil {
		return nil, err
	}

	output := &JSONOutput{
		Score:        report.Result.Score,
		Grade:        report.Result.Label(),
		Improvements: nonNil(report.Result.Improvements),
		UnclearParts: nonNil(report.Result.UnclearParts),
		Provider:     report.Provider,
		Model:        report.Model,
		RequestID:    report.RequestID,
		ElapsedMS:    report.Elapsed.Milliseconds(),
	}

	return json.MarshalIndent(output, "", "  ")
}

// JSONOutput is the machine readable report
type JSONOutput struct {
	Score        int      `json:"score"`
	Grade        string   `json:"grade"`
	Improvements []string `json:"improvements"`
	UnclearParts []string `json:"unclear_parts"`
	Provider     string   `json:"provider,omitempty"`
	Model        string   `json:"model,omitempty"`
	RequestID    string   `json:"request_id,omitempty"`
	ElapsedMS    int64    `json:"elapsed_ms,omitempty"`
}
