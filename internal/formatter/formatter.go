package formatter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/mahoraga/internal/ai"
)

// Report is one finished analysis together with where it came from
type Report struct {
	Provider  string
	Model     string
	RequestID string
	Prompt    string
	Elapsed   time.Duration
	Result    *ai.AnalysisResult
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// Output formats accepted by New
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Formats lists the accepted output format names
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatMarkdown, FormatCSV}
}

var errNoResult = errors.New("no analysis result to format")

// New returns the formatter for format. Color only affects the text output.
func New(format string, color bool) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatText, "terminal":
		return NewTerminal(color), nil
	case FormatJSON:
		return NewJSON(), nil
	case FormatMarkdown, "md":
		return NewMarkdown(), nil
	case FormatCSV:
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (expected one of %s)", format, strings.Join(Formats(), ", "))
	}
}

func checkReport(report *Report) error {
	if report == nil || report.Result == nil {
		return errNoResult
	}
	return nil
}
