package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/mahoraga/internal/settings"
)

const (
	settingsWidth = 60

	// maxMaskLength caps the bullets shown for a secret so its length leaks
	// only up to this point
	maxMaskLength = 20
)

func (m *Model) renderSettings() string {
	s := m.settings
	fields := s.Fields()

	var rows []string
	for i, field := range fields {
		rows = append(rows, m.renderSettingsRow(field, i == s.Selected()))
		if field == settings.FieldProvider {
			rows = append(rows, "")
		}
	}

	if msg, isErr := s.Message(); msg != "" {
		style := m.styles.Success
		if isErr {
			style = m.styles.Error
		}
		rows = append(rows, "", style.Render(msg))
	}

	rows = append(rows, "", m.help.View(settingsHelp{keys: m.keys, editing: s.Editing()}))

	width := min(settingsWidth, max(30, m.width-4))
	return titledBox(strings.Join(rows, "\n"), " Settings ", m.styles.Accent, m.styles.Theme.Primary, width)
}

func (m *Model) renderSettingsRow(field settings.Field, selected bool) string {
	s := m.settings

	marker := "  "
	label := m.styles.Label
	if selected {
		marker = m.styles.Accent.Render("▸ ")
		label = m.styles.Accent.Bold(true)
	}

	switch {
	case field.IsButton():
		text := "[ " + field.Label() + " ]"
		if selected {
			return marker + m.styles.Selected.Render(text)
		}
		return marker + m.styles.Muted.Render(text)

	case field.IsProviderSelector():
		row := marker + label.Render(field.Label()+": ") + m.styles.Accent.Render(s.FieldValue(field))
		if selected {
			row += m.styles.Muted.Render(" (← →)")
		}
		return row

	case selected && s.Editing():
		before, after := splitAt(s.EditValue(), s.EditCursor())
		if field.IsSecret() {
			before = mask(before, -1)
			after = mask(after, -1)
		}
		return marker + label.Render(field.Label()+": ") + m.renderWithCursor(before, after, m.styles.Body)

	default:
		value := s.FieldValue(field)
		var shown string
		switch {
		case value == "":
			shown = m.styles.Muted.Render("(empty)")
		case field.IsSecret():
			shown = m.styles.Body.Render(mask(value, maxMaskLength))
		default:
			shown = m.styles.Body.Render(value)
		}
		row := marker + label.Render(field.Label()+": ") + shown
		if selected {
			row += m.styles.Muted.Render(" (Enter to edit)")
		}
		return row
	}
}

// mask replaces every rune of s with a bullet, capped at limit when limit is
// not negative
func mask(s string, limit int) string {
	n := len([]rune(s))
	if limit >= 0 && n > limit {
		n = limit
	}
	return strings.Repeat("•", n)
}

func splitAt(s string, cursor int) (string, string) {
	r := []rune(s)
	cursor = max(0, min(cursor, len(r)))
	return string(r[:cursor]), string(r[cursor:])
}

// overlayCenter draws fg centered over bg, replacing whole background lines.
// The lines above and below stay visible as the frozen main screen.
func overlayCenter(bg, fg string, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	top := max(0, (len(bgLines)-len(fgLines))/2)
	for i, line := range fgLines {
		row := top + i
		placed := lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
		if row < len(bgLines) {
			bgLines[row] = placed
		} else {
			bgLines = append(bgLines, placed)
		}
	}

	return strings.Join(bgLines, "\n")
}
