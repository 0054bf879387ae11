package tui

import (
	"github.com/colonyops/barber/internal/core/toast"
)

const (
	maxVisibleToasts = 5
	toastWidth       = 48
)

// ToastController holds the last list published by the registry. The
// registry owns lifetimes; the controller only decides what is on screen.
type ToastController struct {
	toasts []toast.Notification
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Set replaces the displayed list.
func (c *ToastController) Set(list []toast.Notification) {
	c.toasts = list
}

// Visible returns at most maxVisibleToasts entries, newest last.
func (c *ToastController) Visible() []toast.Notification {
	if len(c.toasts) > maxVisibleToasts {
		return c.toasts[len(c.toasts)-maxVisibleToasts:]
	}
	return c.toasts
}

// Newest returns the ID of the most recent toast.
func (c *ToastController) Newest() (string, bool) {
	if len(c.toasts) == 0 {
		return "", false
	}
	return c.toasts[len(c.toasts)-1].ID, true
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Hidden returns how many toasts are live but not shown.
func (c *ToastController) Hidden() int {
	return max(len(c.toasts)-maxVisibleToasts, 0)
}
