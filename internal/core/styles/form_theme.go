package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// FormTheme returns a huh theme using the active palette. huh still renders
// with lipgloss v1, so colors are passed as hex strings.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	var (
		primary   = v1Color(ColorPrimary)
		secondary = v1Color(ColorSecondary)
		muted     = v1Color(ColorMuted)
		fg        = v1Color(ColorForeground)
		bg        = v1Color(ColorBackground)
		errColor  = v1Color(ColorError)
	)

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errColor)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(fg)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(bg).Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(fg)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipglossv1.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)

	return t
}

func v1Color(c color.Color) lipglossv1.Color {
	if hex := hexPtr(c); hex != nil {
		return lipglossv1.Color(*hex)
	}
	return lipglossv1.Color("")
}
