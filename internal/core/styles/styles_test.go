package styles

import (
	"testing"

	lipglossv1 "github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestThemeNames_sorted(t *testing.T) {
	names := ThemeNames()

	assert.Equal(t, []string{"catppuccin", "gruvbox", "onedark", "tokyo-night"}, names)
}

func TestUseTheme(t *testing.T) {
	t.Cleanup(func() { UseTheme(DefaultTheme) })

	assert.True(t, UseTheme("gruvbox"))
	assert.Equal(t, themes["gruvbox"].Error, ColorError)

	assert.False(t, UseTheme("neon"))
	assert.Equal(t, themes[DefaultTheme].Error, ColorError)
}

func TestGlamourStyle_uses_active_palette(t *testing.T) {
	cfg := GlamourStyle()

	if assert.NotNil(t, cfg.H1.Color) {
		assert.Equal(t, *hexPtr(ColorPrimary), *cfg.H1.Color)
	}
}

func TestFormTheme_uses_active_palette(t *testing.T) {
	theme := FormTheme()

	assert.Equal(t, lipglossv1.Color(*hexPtr(ColorPrimary)), theme.Focused.Title.GetForeground())
	assert.Equal(t, lipglossv1.Color(*hexPtr(ColorError)), theme.Focused.ErrorMessage.GetForeground())
}
