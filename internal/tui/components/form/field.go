package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by form fields.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	Label() string
	// SetError shows msg under the field; an empty msg clears it.
	SetError(msg string)
	Error() string
}
