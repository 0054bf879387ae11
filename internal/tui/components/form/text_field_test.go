package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/barber/pkg/tuitest"
)

func TestTextField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextField("E-mail", "you@example.com", "")
		assert.Equal(t, "E-mail", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextField("Name", "", "John Doe")
		assert.Equal(t, "John Doe", f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("Name", "", "")

		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		field, cmd := f.Update(tuitest.KeyPress('a'))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("typing while focused", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.Focus()

		var field Field = f
		for _, msg := range tuitest.Type("john") {
			field, _ = field.Update(msg)
		}

		assert.Equal(t, "john", field.Value())
	})

	t.Run("error shown under field", func(t *testing.T) {
		f := NewTextField("E-mail", "", "")
		f.SetError("must be a valid e-mail address")

		view := tuitest.StripANSI(f.View())
		assert.Contains(t, view, "must be a valid e-mail address")

		f.SetError("")
		assert.NotContains(t, tuitest.StripANSI(f.View()), "valid e-mail")
	})

	t.Run("secret masks value", func(t *testing.T) {
		f := NewTextField("Password", "", "hunter22", Secret())

		assert.Equal(t, "hunter22", f.Value())
		assert.NotContains(t, tuitest.StripANSI(f.View()), "hunter22")
	})

	t.Run("view changes with focus", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		unfocused := f.View()

		f.Focus()
		focused := f.View()

		assert.NotEqual(t, unfocused, focused)
	})

	t.Run("non key messages are forwarded", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.Focus()
		field, _ := f.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
		assert.Empty(t, field.Value())
	})
}
