package toast

import (
	"context"
	"sync"
)

// Notifier is the mutation handle handed to UI code. It deliberately hides
// the list; readers use Provider.Subscribe instead.
type Notifier interface {
	Add(in Input) Notification
	Remove(id string)
}

// notifier wraps a registry so callers cannot type-assert their way to the
// list or to Close.
type notifier struct {
	reg *Registry
}

func (n notifier) Add(in Input) Notification { return n.reg.Add(in) }
func (n notifier) Remove(id string)          { n.reg.Remove(id) }

// Provider hands the single registry of a session to any number of
// consumers. A registry exists between Open and Close.
type Provider struct {
	mu   sync.RWMutex
	reg  *Registry
	opts []Option
}

// NewProvider creates a provider. opts are applied to every registry it opens.
func NewProvider(opts ...Option) *Provider {
	return &Provider{opts: opts}
}

// Open starts a session. It returns the already open registry if called
// twice without Close.
func (p *Provider) Open() *Registry {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.reg == nil {
		p.reg = NewRegistry(p.opts...)
	}
	return p.reg
}

// Close tears down the open registry, if any.
func (p *Provider) Close() {
	p.mu.Lock()
	reg := p.reg
	p.reg = nil
	p.mu.Unlock()

	if reg != nil {
		reg.Close()
	}
}

// Registry returns the open registry.
func (p *Provider) Registry() (*Registry, error) {
	return p.active("registry")
}

// Notifier returns the Add/Remove handle for the open registry. It returns a
// *UsageError when called outside Open/Close.
func (p *Provider) Notifier() (Notifier, error) {
	reg, err := p.active("notifier")
	if err != nil {
		return nil, err
	}
	return notifier{reg: reg}, nil
}

// MustNotifier is like Notifier but panics on a wiring error.
func (p *Provider) MustNotifier() Notifier {
	n, err := p.Notifier()
	if err != nil {
		panic(err)
	}
	return n
}

// Subscribe registers a read-only observer on the open registry.
func (p *Provider) Subscribe(fn Subscriber) (unsubscribe func(), err error) {
	reg, err := p.active("subscribe")
	if err != nil {
		return nil, err
	}
	return reg.Subscribe(fn), nil
}

func (p *Provider) active(op string) (*Registry, error) {
	if p == nil {
		return nil, &UsageError{Op: op, Err: ErrNoRegistry}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.reg == nil {
		return nil, &UsageError{Op: op, Err: ErrNoRegistry}
	}
	return p.reg, nil
}

type notifierKey struct{}

// WithNotifier returns a copy of ctx carrying n.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierKey{}, n)
}

// FromContext returns the notifier stored by WithNotifier. It returns a
// *UsageError when none is present.
func FromContext(ctx context.Context) (Notifier, error) {
	if n, ok := ctx.Value(notifierKey{}).(Notifier); ok && n != nil {
		return n, nil
	}
	return nil, &UsageError{Op: "from context", Err: ErrNoNotifier}
}
