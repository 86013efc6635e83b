package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeScoreColor(t *testing.T) {
	theme := GoldTheme

	tests := []struct {
		score int
		want  string
	}{
		{100, theme.Success.Dark},
		{70, theme.Success.Dark},
		{69, theme.Warning.Dark},
		{50, theme.Warning.Dark},
		{49, theme.Caution.Dark},
		{30, theme.Caution.Dark},
		{29, theme.Error.Dark},
		{0, theme.Error.Dark},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, theme.ScoreColor(tt.score).Dark, "score %d", tt.score)
	}
}

func TestSetThemeByName(t *testing.T) {
	t.Cleanup(func() { SetTheme(&GoldTheme) })

	assert.True(t, SetThemeByName("high-contrast"))
	assert.Equal(t, "high-contrast", GetTheme().Name)
	assert.Equal(t, HighContrastTheme.Primary, GetStyles().Theme.Primary)

	assert.False(t, SetThemeByName("neon"))
	assert.Equal(t, "high-contrast", GetTheme().Name, "unknown names keep the current theme")

	assert.True(t, SetThemeByName("default"))
	assert.Equal(t, "gold", GetTheme().Name)
}

func TestIsColorDisabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, IsColorDisabled())

	t.Setenv("NO_COLOR", "1")
	assert.True(t, IsColorDisabled())
}
