// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/barber/internal/core/styles"
)

// HelpDialog renders a markdown help page in a centered modal.
type HelpDialog struct {
	content string
}

// NewHelpDialog renders markdown wrapped to width. If rendering fails the raw
// markdown is shown.
func NewHelpDialog(markdown string, width int) *HelpDialog {
	return &HelpDialog{content: renderMarkdown(markdown, width)}
}

func renderMarkdown(markdown string, width int) string {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return markdown
	}

	return strings.Trim(rendered, "\n")
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	help := styles.ModalHelpStyle.Render("esc/? close")
	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, h.content, help))
}

// Overlay renders the help dialog centered over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return Center(background, h.View(), width, height)
}

// Center composites fg over the middle of background.
func Center(background, fg string, width, height int) string {
	bgLayer := lipgloss.NewLayer(background)
	fgLayer := lipgloss.NewLayer(fg)

	fgW := lipgloss.Width(fg)
	fgH := lipgloss.Height(fg)
	fgLayer.X(max((width-fgW)/2, 0)).Y(max((height-fgH)/2, 0)).Z(1)

	compositor := lipgloss.NewCompositor(bgLayer, fgLayer)
	return compositor.Render()
}
