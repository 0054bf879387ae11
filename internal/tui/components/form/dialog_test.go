package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/barber/pkg/tuitest"
)

func TestDialog(t *testing.T) {
	t.Run("creation focuses first field", func(t *testing.T) {
		f1 := NewTextField("Name", "", "")
		f2 := NewTextField("E-mail", "", "")
		d := NewDialog("Sign up", []Field{f1, f2}, []string{"name", "email"})

		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
		assert.False(t, d.Submitted())
		assert.False(t, d.Cancelled())
	})

	t.Run("empty dialog submits on enter", func(t *testing.T) {
		d := NewDialog("Sign out", []Field{}, []string{})
		assert.Empty(t, d.Values())

		d.Update(tuitest.KeyEnter())
		assert.True(t, d.Submitted())
	})

	t.Run("tab advances focus", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		f3 := NewTextField("C", "", "")
		d := NewDialog("Test", []Field{f1, f2, f3}, []string{"a", "b", "c"})

		d.Update(tuitest.KeyTab())
		assert.False(t, f1.Focused())
		assert.True(t, f2.Focused())

		d.Update(tuitest.KeyTab())
		assert.True(t, f3.Focused())
	})

	t.Run("enter past last field submits", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(tuitest.KeyEnter())
		assert.True(t, d.Submitted())
	})

	t.Run("shift+tab retreats focus", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"a", "b"})

		d.Update(tuitest.KeyTab())
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
	})

	t.Run("esc cancels", func(t *testing.T) {
		d := NewDialog("Test", []Field{NewTextField("A", "", "")}, []string{"a"})

		d.Update(tuitest.KeyEsc())
		assert.True(t, d.Cancelled())
	})

	t.Run("values keyed by name", func(t *testing.T) {
		d := NewDialog("Test", []Field{
			NewTextField("Name", "", "John Doe"),
			NewTextField("E-mail", "", "johndoe@example.com"),
		}, []string{"name", "email"})

		assert.Equal(t, map[string]string{"name": "John Doe", "email": "johndoe@example.com"}, d.Values())
	})

	t.Run("typing reaches focused field", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		for _, msg := range tuitest.Type("hi") {
			d.Update(msg)
		}
		assert.Equal(t, "hi", f1.Value())
	})

	t.Run("busy ignores input", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})
		d.SetBusy(true)

		d.Update(tuitest.KeyEsc())
		d.Update(tuitest.KeyPress('x'))

		assert.False(t, d.Cancelled())
		assert.Empty(t, f1.Value())
		assert.Contains(t, tuitest.StripANSI(d.View()), "submitting")
	})

	t.Run("SetErrors reopens and focuses first failing field", func(t *testing.T) {
		f1 := NewTextField("Name", "", "John")
		f2 := NewTextField("E-mail", "", "bad")
		f3 := NewTextField("Password", "", "")
		d := NewDialog("Test", []Field{f1, f2, f3}, []string{"name", "email", "password"})
		d.Update(tuitest.KeyEnter())
		d.Update(tuitest.KeyEnter())
		d.Update(tuitest.KeyEnter())
		require.True(t, d.Submitted())
		d.SetBusy(true)

		d.SetErrors(map[string]string{"email": "invalid", "password": "too short"})

		assert.False(t, d.Submitted())
		assert.False(t, d.Busy())
		assert.True(t, f2.Focused())
		assert.False(t, f3.Focused())
		assert.Equal(t, "invalid", f2.Error())
		assert.Empty(t, f1.Error())
	})

	t.Run("view shows title and fields", func(t *testing.T) {
		d := NewDialog("Forgot password", []Field{NewTextField("E-mail", "", "")}, []string{"email"})

		view := tuitest.StripANSI(d.View())
		assert.Contains(t, view, "Forgot password")
		assert.Contains(t, view, "E-mail")
	})
}
