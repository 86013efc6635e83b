package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(report *Report) ([]byte, error) {
	if err := checkReport(report); err != nil {
		return nil, err
	}

	var b strings.Builder

	f.writeHeader(&b)
	f.writeScore(&b, report)
	f.writeList(&b, "recommendations", "Improvements", report.Result.Improvements)
	f.writeList(&b, "warning", "Unclear Parts", report.Result.UnclearParts)

	if len(report.Result.Improvements) == 0 && len(report.Result.UnclearParts) == 0 {
		b.WriteString("No feedback available.\n")
	}

	return []byte(b.String()), nil
}

// writeHeader writes the boxed report title
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Prompt Quality Analysis"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeScore writes the score tree and its bar
func (f *terminalFormatter) writeScore(b *strings.Builder, report *Report) {
	result := report.Result
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Score\n")

	items := []termfmt.TreeItem{
		{Label: "Score", Value: fmt.Sprintf("%s %d/100", scoreSymbol(result.Score, f.opts), result.Score)},
		{Label: "Grade", Value: result.Label()},
	}
	if report.Provider != "" {
		provider := report.Provider
		if report.Model != "" {
			provider += " (" + report.Model + ")"
		}
		items = append(items, termfmt.TreeItem{Label: "Provider", Value: provider})
	}
	if report.Elapsed > 0 {
		items = append(items, termfmt.TreeItem{Label: "Duration", Value: report.Elapsed.Round(time.Millisecond).String()})
	}
	items[len(items)-1].Last = true

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
	b.WriteString(termfmt.CreateConfidenceBar(float64(result.Score)/100, f.opts) + "\n\n")
}

// writeList writes a titled bullet list, skipping empty ones
func (f *terminalFormatter) writeList(b *strings.Builder, emojiKey, title string, items []string) {
	if len(items) == 0 {
		return
	}

	symbol := termfmt.GetEmoji(emojiKey, f.opts)
	b.WriteString(symbol + " " + title + "\n")
	for _, item := range items {
		b.WriteString("• " + item + "\n")
	}
	b.WriteString("\n")
}
