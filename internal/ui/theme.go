package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/mahoraga/internal/ai"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Caution lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	// Surfaces
	Background lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
}

// buildTheme creates a theme from light/dark pairs
func buildTheme(name string, primary, secondary, muted, success, warning, caution, errorColor, background, border [2]string) Theme {
	return Theme{
		Name:       name,
		Primary:    lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary:  lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Muted:      lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
		Success:    lipgloss.AdaptiveColor{Light: success[0], Dark: success[1]},
		Warning:    lipgloss.AdaptiveColor{Light: warning[0], Dark: warning[1]},
		Caution:    lipgloss.AdaptiveColor{Light: caution[0], Dark: caution[1]},
		Error:      lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Background: lipgloss.AdaptiveColor{Light: background[0], Dark: background[1]},
		Border:     lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
	}
}

// Available themes
var (
	GoldTheme = buildTheme("gold",
		[2]string{"#A8841F", "#D4AF37"}, [2]string{"#4B4B4B", "#B0B0B0"}, [2]string{"#8A8A8A", "#666666"},
		[2]string{"#15803D", "#22C55E"}, [2]string{"#A16207", "#EAB308"}, [2]string{"#C2410C", "#F97316"},
		[2]string{"#B91C1C", "#EF4444"}, [2]string{"#FFFFFF", "#111111"},
		[2]string{"#D1D5DB", "#404040"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#333333", "#DDDDDD"}, [2]string{"#666666", "#BBBBBB"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC6600", "#FFAA00"}, [2]string{"#993300", "#FF8800"},
		[2]string{"#CC0000", "#FF4444"}, [2]string{"#FFFFFF", "#000000"},
		[2]string{"#000000", "#FFFFFF"})
)

var currentTheme = GoldTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	switch name {
	case "gold", "default":
		SetTheme(&GoldTheme)
		return true
	case "high-contrast":
		SetTheme(&HighContrastTheme)
		return true
	default:
		return false
	}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// ScoreColor maps a score onto the theme, from red for very poor to green
func (t Theme) ScoreColor(score int) lipgloss.AdaptiveColor {
	switch ai.GradeFor(score) {
	case ai.GradeExcellent, ai.GradeGood:
		return t.Success
	case ai.GradeFair:
		return t.Warning
	case ai.GradePoor:
		return t.Caution
	default:
		return t.Error
	}
}

// Styles contains the styled components shared by the views
type Styles struct {
	Theme Theme

	Logo     lipgloss.Style
	Version  lipgloss.Style
	Label    lipgloss.Style
	Accent   lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	BoxTitle lipgloss.Style
}

// GetStyles builds the styles for the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme: theme,

		Logo: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Version: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Label: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Accent: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Body: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Cursor: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary).
			Bold(true),

		BoxTitle: lipgloss.NewStyle().
			Foreground(theme.Secondary),
	}
}
