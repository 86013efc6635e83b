package formatter

import (
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/mahoraga/internal/ai"
)

// scoreSymbol picks a status symbol for the score band
func scoreSymbol(score int, opts *termfmt.TerminalOptions) string {
	switch grade := ai.GradeFor(score); {
	case grade >= ai.GradeGood:
		return termfmt.GetEmoji("success", opts)
	case grade >= ai.GradeFair:
		return termfmt.GetEmoji("warning", opts)
	default:
		return termfmt.GetEmoji("error", opts)
	}
}

// nonNil keeps empty lists serialized as [] rather than null
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// singleLine flattens s for one-line outputs and truncates long text
func singleLine(s string, limit int) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")

	r := []rune(s)
	if limit > 3 && len(r) > limit {
		return string(r[:limit-3]) + "..."
	}
	return s
}
