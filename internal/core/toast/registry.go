package toast

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/barber/internal/core/logging"
)

// Subscriber receives the full notification list after every change. The
// slice is owned by the subscriber.
type Subscriber func([]Notification)

type entry struct {
	n     Notification
	timer Timer
}

// Registry owns the ordered list of live notifications and their expiry
// timers. All methods are safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries []entry
	subs    map[uint64]Subscriber
	subSeq  uint64
	closed  bool

	// guarded by mu; see publish
	dispatching bool
	pending     bool

	policy  Policy
	clock   Clock
	newID   func() string
	metrics *Metrics
	logger  zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithPolicy sets the lifetime policy.
func WithPolicy(p Policy) Option {
	return func(r *Registry) { r.policy = p }
}

// WithClock replaces the timer source.
func WithClock(c Clock) Option {
	return func(r *Registry) { r.clock = c }
}

// WithIDFunc replaces the ID generator.
func WithIDFunc(fn func() string) Option {
	return func(r *Registry) { r.newID = fn }
}

// WithMetrics records lifecycle counters.
func WithMetrics(m *Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		subs:   make(map[uint64]Subscriber),
		policy: DefaultPolicy(),
		clock:  RealClock(),
		newID:  uuid.NewString,
		logger: logging.Component("toast"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends a new notification, arms its expiry timer and notifies
// subscribers. Identical inputs produce distinct notifications. After Close,
// Add does nothing and returns the zero Notification.
func (r *Registry) Add(in Input) Notification {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.logger.Warn().Str("title", in.Title).Msg("add on closed registry ignored")
		return Notification{}
	}

	n := Notification{
		ID:          r.uniqueIDLocked(),
		Kind:        in.Kind,
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   r.clock.Now(),
	}

	e := entry{n: n}
	ttl, expires := r.policy.lifetime(in)
	if expires {
		id := n.ID
		e.timer = r.clock.AfterFunc(ttl, func() { r.expire(id) })
	}
	r.entries = append(r.entries, e)

	var evicted int
	if limit := r.policy.MaxToasts; limit > 0 {
		for len(r.entries) > limit {
			r.deleteLocked(0)
			evicted++
		}
	}
	active := len(r.entries)
	r.mu.Unlock()

	r.metrics.added(n.Kind, active)
	r.metrics.removed(ReasonEvicted, evicted, active)
	r.logger.Debug().
		Str("id", n.ID).
		Str("kind", string(n.Kind)).
		Dur("ttl", ttl).
		Bool("expires", expires).
		Msg("toast added")

	r.publish()
	return n
}

// Remove deletes the notification with the given id and cancels its timer.
// Unknown or already removed ids are ignored.
func (r *Registry) Remove(id string) {
	r.remove(id, ReasonDismissed)
}

// Dismiss removes the newest notification, if any.
func (r *Registry) Dismiss() {
	r.mu.Lock()
	if len(r.entries) == 0 {
		r.mu.Unlock()
		return
	}
	id := r.entries[len(r.entries)-1].n.ID
	r.mu.Unlock()

	r.remove(id, ReasonDismissed)
}

// DismissAll removes every notification.
func (r *Registry) DismissAll() {
	r.mu.Lock()
	count := len(r.entries)
	for i := range r.entries {
		stopTimer(r.entries[i])
	}
	r.entries = nil
	r.mu.Unlock()

	if count == 0 {
		return
	}

	r.metrics.removed(ReasonDismissed, count, 0)
	r.logger.Debug().Int("count", count).Msg("toasts dismissed")
	r.publish()
}

// List returns a copy of the current notifications in insertion order.
func (r *Registry) List() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Len returns the number of live notifications.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Subscribe registers fn and immediately delivers the current list. The
// returned function unsubscribes; calling it more than once is safe.
func (r *Registry) Subscribe(fn Subscriber) (unsubscribe func()) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return func() {}
	}
	r.subSeq++
	key := r.subSeq
	r.subs[key] = fn
	r.mu.Unlock()

	r.publish()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs, key)
			r.mu.Unlock()
		})
	}
}

// Close stops every timer, empties the list, delivers the empty list one
// last time and drops all subscribers. Close is idempotent.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	count := len(r.entries)
	for i := range r.entries {
		stopTimer(r.entries[i])
	}
	r.entries = nil
	r.mu.Unlock()

	r.metrics.removed(ReasonClosed, count, 0)
	r.publish()

	r.logger.Debug().Int("dropped", count).Msg("toast registry closed")
}

func (r *Registry) expire(id string) {
	r.remove(id, ReasonExpired)
}

func (r *Registry) remove(id, reason string) bool {
	r.mu.Lock()
	i := r.indexLocked(id)
	if i < 0 {
		r.mu.Unlock()
		return false
	}
	r.deleteLocked(i)
	active := len(r.entries)
	r.mu.Unlock()

	r.metrics.removed(reason, 1, active)
	r.logger.Debug().Str("id", id).Str("reason", reason).Msg("toast removed")

	r.publish()
	return true
}

// publish delivers the latest list to every subscriber. Only one goroutine
// delivers at a time; callers arriving while a delivery is in flight,
// including re-entrant calls from a subscriber, mark the state pending and
// the active dispatcher delivers a fresh snapshot before it returns.
func (r *Registry) publish() {
	r.mu.Lock()
	if r.dispatching {
		r.pending = true
		r.mu.Unlock()
		return
	}
	r.dispatching = true

	for {
		r.pending = false
		closed := r.closed
		snap := r.snapshotLocked()
		subs := make([]Subscriber, 0, len(r.subs))
		for _, key := range sortedKeys(r.subs) {
			subs = append(subs, r.subs[key])
		}
		r.mu.Unlock()

		for _, fn := range subs {
			r.deliver(fn, snap)
		}

		r.mu.Lock()
		if closed {
			r.subs = make(map[uint64]Subscriber)
		}
		if !r.pending {
			r.dispatching = false
			r.mu.Unlock()
			return
		}
	}
}

func (r *Registry) deliver(fn Subscriber, snap []Notification) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().Interface("panic", rec).Msg("toast subscriber panicked")
		}
	}()

	list := make([]Notification, len(snap))
	copy(list, snap)
	fn(list)
}

func (r *Registry) uniqueIDLocked() string {
	for {
		id := r.newID()
		if id != "" && r.indexLocked(id) < 0 {
			return id
		}
	}
}

func (r *Registry) indexLocked(id string) int {
	for i := range r.entries {
		if r.entries[i].n.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) deleteLocked(i int) {
	stopTimer(r.entries[i])
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
}

func (r *Registry) snapshotLocked() []Notification {
	out := make([]Notification, len(r.entries))
	for i := range r.entries {
		out[i] = r.entries[i].n
	}
	return out
}

func stopTimer(e entry) {
	if e.timer != nil {
		e.timer.Stop()
	}
}

func sortedKeys(m map[uint64]Subscriber) []uint64 {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
