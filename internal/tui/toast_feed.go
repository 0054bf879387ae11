package tui

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/barber/internal/core/toast"
)

type toastsChangedMsg struct {
	toasts []toast.Notification
}

// ToastFeed bridges registry deliveries, which arrive on timer goroutines,
// into the bubbletea update loop. Only the latest list is kept and signals
// are coalesced.
type ToastFeed struct {
	mu     sync.Mutex
	latest []toast.Notification
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

func NewToastFeed() *ToastFeed {
	return &ToastFeed{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Observe is a toast.Subscriber. It never blocks.
func (f *ToastFeed) Observe(list []toast.Notification) {
	f.mu.Lock()
	f.latest = list
	f.mu.Unlock()

	select {
	case f.signal <- struct{}{}:
	default:
	}
}

// Latest returns the most recently observed list.
func (f *ToastFeed) Latest() []toast.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}

// WaitForSignal blocks until the list changes and returns it as a message.
// It returns nil once the feed is stopped.
func (f *ToastFeed) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-f.signal:
			return toastsChangedMsg{toasts: f.Latest()}
		case <-f.done:
			return nil
		}
	}
}

// Stop releases any pending WaitForSignal.
func (f *ToastFeed) Stop() {
	f.once.Do(func() { close(f.done) })
}
