package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/barber/internal/core/styles"
	"github.com/colonyops/barber/internal/core/toast"
)

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack as a single string with toasts stacked
// vertically (oldest at top, newest at bottom).
func (v *ToastView) View() string {
	toasts := v.controller.Visible()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts)+1)
	if hidden := v.controller.Hidden(); hidden > 0 {
		rendered = append(rendered, styles.MutedStyle.Render(fmt.Sprintf("+%d more", hidden)))
	}
	for _, n := range toasts {
		rendered = append(rendered, renderToast(n))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(n toast.Notification) string {
	icon, accent := styles.ToastKind(string(n.Kind))

	content := accent.Render(icon+" ") + styles.ToastTitleStyle.Render(n.Title)
	if n.Description != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, styles.ToastDescriptionStyle.Render(n.Description))
	}
	return styles.ToastStyle.
		Width(toastWidth).
		BorderForeground(accent.GetForeground()).
		Render(content)
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
