package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/barber/internal/core/styles"
)

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	names        []string // parallel slice: value key for each field
	focusedField int
	submitted    bool
	cancelled    bool
	busy         bool
	Title        string
}

// NewDialog creates a form dialog with the given fields and value keys.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, names []string) *Dialog {
	d := &Dialog{
		fields: fields,
		names:  names,
		Title:  title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and
// submit/cancel. Input is ignored while the dialog is busy.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	if d.busy {
		return d, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		return d.advanceFocus()
	case "shift+tab", "up":
		return d.retreatFocus()
	case "enter":
		return d.advanceFocus()
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders the title, all fields with spacing, and help text.
func (d *Dialog) View() string {
	parts := []string{styles.ModalTitleStyle.Render(d.Title), ""}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	help := "tab: next  shift+tab: prev  enter: submit  esc: cancel"
	if d.busy {
		help = "submitting..."
	}
	parts = append(parts, styles.ModalHelpStyle.Render(help))

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Values returns a map of value keys to field values.
func (d *Dialog) Values() map[string]string {
	result := make(map[string]string, len(d.fields))
	for i, field := range d.fields {
		result[d.names[i]] = field.Value()
	}
	return result
}

// SetErrors replaces the field errors, keyed like Values, and reopens the
// dialog for editing with focus on the first failing field.
func (d *Dialog) SetErrors(errs map[string]string) tea.Cmd {
	d.submitted = false
	d.busy = false

	first := -1
	for i, field := range d.fields {
		msg := errs[d.names[i]]
		field.SetError(msg)
		if msg != "" && first < 0 {
			first = i
		}
	}
	if first < 0 {
		return nil
	}
	return d.focus(first)
}

// Resume reopens a submitted dialog without changing its fields.
func (d *Dialog) Resume() {
	d.submitted = false
	d.busy = false
}

// SetBusy marks the dialog as waiting for its submission to finish.
func (d *Dialog) SetBusy(busy bool) { d.busy = busy }

// Busy reports whether a submission is in flight.
func (d *Dialog) Busy() bool { return d.busy }

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		d.submitted = true
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		// Past the last field: submit
		d.submitted = true
		return d, nil
	}

	return d, d.focus(next)
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}
	return d, d.focus(d.focusedField - 1)
}

func (d *Dialog) focus(i int) tea.Cmd {
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d.fields[d.focusedField].Focus()
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}
