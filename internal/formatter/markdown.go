package formatter

import (
	"fmt"
	"strings"
	"time"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct {
	now func() time.Time
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{now: time.Now}
}

func (f *markdownFormatter) Format(report *Report) ([]byte, error) {
	if err := checkReport(report); err != nil {
		return nil, err
	}

	var b strings.Builder

	b.WriteString("# Prompt Quality Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", f.now().Format("2006-01-02 15:04:05"))

	f.writeSummaryTable(&b, report)

	if report.Prompt != "" {
		b.WriteString("## Prompt\n\n")
		b.WriteString("```text\n" + strings.TrimRight(report.Prompt, "\n") + "\n```\n\n")
	}

	f.writeList(&b, "Improvements", report.Result.Improvements)
	f.writeList(&b, "Unclear Parts", report.Result.UnclearParts)

	return []byte(b.String()), nil
}

// writeSummaryTable writes the score table
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, report *Report) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Score | %d/100 |\n", report.Result.Score)
	fmt.Fprintf(b, "| Grade | %s |\n", report.Result.Label())
	if report.Provider != "" {
		fmt.Fprintf(b, "| Provider | %s |\n", report.Provider)
	}
	if report.Model != "" {
		fmt.Fprintf(b, "| Model | %s |\n", report.Model)
	}
	if report.RequestID != "" {
		fmt.Fprintf(b, "| Request ID | `%s` |\n", report.RequestID)
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(items) == 0 {
		b.WriteString("_None_\n\n")
		return
	}
	for _, item := range items {
		b.WriteString("- " + singleLine(item, 0) + "\n")
	}
	b.WriteString("\n")
}
