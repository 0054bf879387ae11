package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/barber/internal/core/toast"
	"github.com/colonyops/barber/pkg/tuitest"
)

func notifications(n int) []toast.Notification {
	list := make([]toast.Notification, n)
	for i := range list {
		list[i] = toast.Notification{
			ID:    fmt.Sprintf("t%d", i+1),
			Kind:  toast.KindInfo,
			Title: fmt.Sprintf("toast %d", i+1),
		}
	}
	return list
}

func TestToastController(t *testing.T) {
	c := NewToastController()

	_, ok := c.Newest()
	assert.False(t, ok)
	assert.False(t, c.HasToasts())

	c.Set(notifications(7))

	id, ok := c.Newest()
	require.True(t, ok)
	assert.Equal(t, "t7", id)

	visible := c.Visible()
	require.Len(t, visible, maxVisibleToasts)
	assert.Equal(t, "t3", visible[0].ID)
	assert.Equal(t, 2, c.Hidden())

	c.Set(nil)
	assert.False(t, c.HasToasts())
	assert.Equal(t, 0, c.Hidden())
}

func TestToastFeed(t *testing.T) {
	t.Run("coalesces deliveries and keeps the latest", func(t *testing.T) {
		f := NewToastFeed()

		f.Observe(notifications(1))
		f.Observe(notifications(2))

		msg := f.WaitForSignal()()
		changed, ok := msg.(toastsChangedMsg)
		require.True(t, ok)
		assert.Len(t, changed.toasts, 2)

		select {
		case <-f.signal:
			t.Fatal("second signal should have been coalesced")
		default:
		}
	})

	t.Run("stop releases a waiting command", func(t *testing.T) {
		f := NewToastFeed()
		done := make(chan any, 1)
		go func() { done <- f.WaitForSignal()() }()

		f.Stop()
		f.Stop()

		select {
		case msg := <-done:
			assert.Nil(t, msg)
		case <-time.After(time.Second):
			t.Fatal("WaitForSignal did not return after Stop")
		}
	})
}

func TestToastView(t *testing.T) {
	c := NewToastController()
	v := NewToastView(c)

	assert.Empty(t, v.View())
	assert.Equal(t, "background", v.Overlay("background", 80, 24))

	list := notifications(6)
	list[5] = toast.Notification{ID: "t6", Kind: toast.KindError, Title: "Authentication failed", Description: "Check your credentials."}
	c.Set(list)

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "+1 more")
	assert.NotContains(t, out, "toast 1")
	assert.Contains(t, out, "toast 2")
	assert.Contains(t, out, "Authentication failed")
	assert.Contains(t, out, "Check your credentials.")
}
