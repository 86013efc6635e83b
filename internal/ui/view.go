package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/mahoraga/internal/ai"
	"github.com/yildizm/mahoraga/internal/emoji"
)

const logo = `
 ██   ██  ██████  ██  ██  ██████  ████    ██████  ██████  ██████
 ███ ███  ██  ██  ██  ██  ██  ██  ██ ██   ██  ██  ██      ██  ██
 ██ █ ██  ██████  ██████  ██  ██  ████    ██████  ██ ███  ██████
 ██   ██  ██  ██  ██  ██  ██████  ██ ██   ██  ██  ██████  ██  ██
`

const (
	// logoMinHeight is the terminal height below which the compact header is used
	logoMinHeight = 25

	placeholderFocused = "With this treasure, I summon Eight-Handled Sword Divergent Sila Divine General Mahoraga"
	placeholderIdle    = "Enter your prompt (Enter to analyze)"

	commandMenuMaxWidth = 50
)

// View renders the current state. It never mutates the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	base := m.renderMain()
	if m.screen == ScreenSettings {
		return overlayCenter(base, m.renderSettings(), m.width, m.height)
	}
	return base
}

func (m *Model) contentWidth() int {
	return max(20, m.width-2)
}

func (m *Model) renderMain() string {
	var sections []string

	sections = append(sections, m.renderHeader(), m.renderProvider(), m.renderPrompt())

	if m.mode == ModeCommandMenu {
		sections = append(sections, m.renderCommandMenu())
	}

	if m.result != nil {
		sections = append(sections, m.renderScore(m.result), m.renderFeedback(m.result))
	}

	if m.errMsg != "" {
		sections = append(sections, m.styles.Error.Render("Error: "+m.errMsg))
	} else if hint := m.renderConfigHint(); hint != "" {
		sections = append(sections, hint)
	}

	sections = append(sections, m.help.View(mainHelp{keys: m.keys, mode: m.mode, empty: m.prompt.IsEmpty()}))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().Margin(0, 1).Render(body)
}

func (m *Model) renderHeader() string {
	version := m.opts.Version
	if version == "" {
		version = "dev"
	}

	if m.height < logoMinHeight {
		return m.styles.Logo.Render("MAHORAGA v" + version)
	}

	lines := strings.Split(strings.Trim(logo, "\n"), "\n")
	for i, line := range lines {
		lines[i] = m.styles.Logo.Render(line)
	}
	lines = append(lines, m.styles.Version.Render(" v"+version))
	return strings.Join(lines, "\n")
}

func (m *Model) renderProvider() string {
	return m.styles.Muted.Render("Provider: ") + m.styles.Accent.Render(m.cfg.Provider.Active.DisplayName())
}

func (m *Model) renderPrompt() string {
	focused := m.mode != ModeCommandMenu
	analyzing := m.mode == ModeAnalyzing

	title := ""
	if analyzing {
		title = fmt.Sprintf(" %s%s ", m.word, strings.Repeat(".", m.frame+1))
	}

	var body string
	switch {
	case m.prompt.IsEmpty() && focused && !analyzing:
		body = m.styles.Cursor.Render(" ") + m.styles.Muted.Render(placeholderFocused)
	case m.prompt.IsEmpty():
		body = m.styles.Muted.Render(placeholderIdle)
	case focused && !analyzing:
		body = m.renderWithCursor(m.prompt.Before(), m.prompt.After(), m.styles.Body)
	default:
		body = m.styles.Body.Render(m.prompt.String())
	}

	border := m.styles.Theme.Border
	if focused {
		border = m.styles.Theme.Primary
	}
	return titledBox(body, title, m.styles.BoxTitle, border, m.contentWidth())
}

// renderWithCursor draws a block cursor over the rune at the cursor, or a
// space at the end of a line
func (m *Model) renderWithCursor(before, after string, text lipgloss.Style) string {
	at := " "
	rest := after
	if after != "" {
		r := []rune(after)
		if r[0] == '\n' {
			rest = after
		} else {
			at = string(r[0])
			rest = string(r[1:])
		}
	}

	return renderLines(before, text) + m.styles.Cursor.Render(at) + renderLines(rest, text)
}

// renderLines styles each line separately so multi-line text keeps its
// line breaks unstyled
func renderLines(s string, style lipgloss.Style) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCommandMenu() string {
	matches := m.palette.Matches()

	var lines []string
	for i, cmd := range matches {
		name := fmt.Sprintf("%-12s", cmd.Name)
		desc := " " + cmd.Description
		if i == m.palette.Selected() {
			lines = append(lines, m.styles.Selected.Render(name+desc))
			continue
		}
		lines = append(lines, m.styles.Accent.Render(name)+m.styles.Muted.Render(desc))
	}
	if len(lines) == 0 {
		lines = append(lines, m.styles.Muted.Render("No matching commands"))
	}

	width := min(commandMenuMaxWidth, m.contentWidth()-2)
	menu := titledBox(strings.Join(lines, "\n"), " Commands ", m.styles.Accent, m.styles.Theme.Primary, width)
	return lipgloss.NewStyle().MarginLeft(1).Render(menu)
}

func (m *Model) renderScore(result *ai.AnalysisResult) string {
	color := m.styles.Theme.ScoreColor(result.Score)
	scoreStyle := lipgloss.NewStyle().Foreground(color)

	line := scoreStyle.Render(fmt.Sprintf("%d", result.Score)) +
		m.styles.Muted.Render("/100 - ") +
		scoreStyle.Render(result.Label())

	width := m.contentWidth()
	barWidth := max(0, width-4)
	filled := result.Score * barWidth / 100
	bar := scoreStyle.Render(strings.Repeat("█", filled)) +
		m.styles.Muted.Render(strings.Repeat("░", barWidth-filled))

	return titledBox(line+"\n"+bar, " Quality Score ", m.styles.BoxTitle, m.styles.Theme.Border, width)
}

func (m *Model) renderFeedback(result *ai.AnalysisResult) string {
	width := m.contentWidth()

	if len(result.Improvements) == 0 && len(result.UnclearParts) == 0 {
		return titledBox(m.styles.Muted.Render("No feedback available."), " Feedback ", m.styles.BoxTitle, m.styles.Theme.Border, width)
	}

	var panels []string
	if len(result.Improvements) > 0 {
		panels = append(panels, m.renderBullets(" Improvements ", result.Improvements, m.styles.Success, width))
	}
	if len(result.UnclearParts) > 0 {
		panels = append(panels, m.renderBullets(" Unclear Parts ", result.UnclearParts, m.styles.Warning, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (m *Model) renderBullets(title string, items []string, accent lipgloss.Style, width int) string {
	// border, padding and the bullet itself
	textWidth := max(10, width-4-2)
	wrap := m.styles.Body.Width(textWidth)

	var lines []string
	for _, item := range items {
		wrapped := strings.Split(wrap.Render(item), "\n")
		for i, l := range wrapped {
			prefix := "  "
			if i == 0 {
				prefix = accent.Render("• ")
			}
			lines = append(lines, prefix+l)
		}
	}
	return titledBox(strings.Join(lines, "\n"), title, accent, m.styles.Theme.Border, width)
}

// renderConfigHint nudges towards /settings when the active provider cannot
// be used yet
func (m *Model) renderConfigHint() string {
	if m.mode != ModeIdle || m.result != nil {
		return ""
	}
	missing := m.cfg.MissingFields()
	if len(missing) == 0 {
		return ""
	}

	icon := emoji.GetEmoji("warning")
	if icon != "" {
		icon += " "
	}
	return m.styles.Warning.Render(fmt.Sprintf("%s%s is not configured (missing: %s). Type /settings to configure.",
		icon, m.cfg.Provider.Active.DisplayName(), strings.Join(missing, ", ")))
}

// titledBox draws a rounded box of the given outer width with title set into
// the top border
func titledBox(body, title string, titleStyle lipgloss.Style, border lipgloss.TerminalColor, width int) string {
	b := lipgloss.RoundedBorder()
	borderStyle := lipgloss.NewStyle().Foreground(border)
	inner := max(2, width-2)

	box := lipgloss.NewStyle().
		Border(b).
		BorderTop(false).
		BorderForeground(border).
		Padding(0, 1).
		Width(inner).
		Render(body)

	renderedTitle := ""
	if title != "" {
		renderedTitle = titleStyle.Render(title)
	}
	titleWidth := lipgloss.Width(renderedTitle)
	if titleWidth > inner-1 {
		renderedTitle, titleWidth = "", 0
	}

	top := borderStyle.Render(b.TopLeft+b.Top) +
		renderedTitle +
		borderStyle.Render(strings.Repeat(b.Top, inner-1-titleWidth)+b.TopRight)

	return top + "\n" + box
}
