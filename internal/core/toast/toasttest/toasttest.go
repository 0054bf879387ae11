// Package toasttest provides a manual clock and a subscription recorder for
// tests that exercise the toast registry.
package toasttest

import (
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/colonyops/barber/internal/core/toast"
)

// Clock is a toast.Clock whose timers fire only when Advance is called.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers map[int]*timer
}

type timer struct {
	clock *Clock
	id    int
	when  time.Time
	fn    func()
}

func (t *timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if _, ok := t.clock.timers[t.id]; !ok {
		return false
	}
	delete(t.clock.timers, t.id)
	return true
}

// NewClock creates a clock starting at a fixed instant.
func NewClock() *Clock {
	return &Clock{
		now:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		timers: make(map[int]*timer),
	}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, f func()) toast.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &timer{clock: c, id: c.seq, when: c.now.Add(d), fn: f}
	c.timers[t.id] = t
	return t
}

// Advance moves time forward by d and runs every timer that became due, in
// deadline order. Callbacks run without the clock's lock held.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now

	var due []*timer
	for id, t := range c.timers {
		if !t.when.After(now) {
			due = append(due, t)
			delete(c.timers, id)
		}
	}
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].when.Equal(due[j].when) {
			return due[i].id < due[j].id
		}
		return due[i].when.Before(due[j].when)
	})

	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of armed timers.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// SequentialIDs returns a deterministic id generator: "t1", "t2", ...
func SequentialIDs() func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("t%d", n)
	}
}

// Recorder captures every list delivered to a subscriber.
type Recorder struct {
	mu        sync.Mutex
	snapshots [][]toast.Notification
}

// Record subscribes a new recorder to reg and unsubscribes on test cleanup.
func Record(t *testing.T, reg *toast.Registry) *Recorder {
	t.Helper()

	rec := &Recorder{}
	unsubscribe := reg.Subscribe(rec.Observe)
	t.Cleanup(unsubscribe)
	return rec
}

// Observe is a toast.Subscriber.
func (r *Recorder) Observe(list []toast.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, list)
}

// Snapshots returns all delivered lists in delivery order.
func (r *Recorder) Snapshots() [][]toast.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]toast.Notification, len(r.snapshots))
	copy(out, r.snapshots)
	return out
}

// Last returns the most recently delivered list.
func (r *Recorder) Last() []toast.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.snapshots) == 0 {
		return nil
	}
	return r.snapshots[len(r.snapshots)-1]
}

// IDs returns the ids of list in order.
func IDs(list []toast.Notification) []string {
	ids := make([]string, len(list))
	for i, n := range list {
		ids[i] = n.ID
	}
	return ids
}
