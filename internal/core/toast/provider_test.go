package toast_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/barber/internal/core/toast"
	"github.com/colonyops/barber/internal/core/toast/toasttest"
)

func TestProvider_Notifier_requires_open_registry(t *testing.T) {
	p := toast.NewProvider()

	n, err := p.Notifier()

	require.Error(t, err)
	assert.Nil(t, n)
	assert.True(t, errors.Is(err, toast.ErrNoRegistry))
	assert.True(t, toast.IsUsageError(err))
}

func TestProvider_nil_provider_is_usage_error(t *testing.T) {
	var p *toast.Provider

	_, err := p.Notifier()

	assert.True(t, toast.IsUsageError(err))
}

func TestProvider_MustNotifier_panics_outside_lifetime(t *testing.T) {
	p := toast.NewProvider()

	assert.Panics(t, func() { p.MustNotifier() })

	p.Open()
	t.Cleanup(p.Close)
	assert.NotPanics(t, func() { p.MustNotifier() })
}

func TestProvider_Open_returns_single_registry(t *testing.T) {
	p := toast.NewProvider()
	t.Cleanup(p.Close)

	first := p.Open()
	second := p.Open()

	assert.Same(t, first, second)
}

func TestProvider_notifiers_share_registry(t *testing.T) {
	clock := toasttest.NewClock()
	p := toast.NewProvider(toast.WithClock(clock))
	reg := p.Open()
	t.Cleanup(p.Close)

	a := p.MustNotifier()
	b := p.MustNotifier()

	first := a.Add(toast.Error("Erro", ""))
	second := b.Add(toast.Error("Erro", ""))
	require.Len(t, reg.List(), 2)

	b.Remove(first.ID)

	list := reg.List()
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestProvider_Notifier_hides_registry(t *testing.T) {
	p := toast.NewProvider()
	p.Open()
	t.Cleanup(p.Close)

	n := p.MustNotifier()

	_, isRegistry := n.(*toast.Registry)
	assert.False(t, isRegistry)
}

func TestProvider_Subscribe(t *testing.T) {
	p := toast.NewProvider(toast.WithClock(toasttest.NewClock()))

	_, err := p.Subscribe(func([]toast.Notification) {})
	require.ErrorIs(t, err, toast.ErrNoRegistry)

	p.Open()
	var last []toast.Notification
	unsubscribe, err := p.Subscribe(func(list []toast.Notification) { last = list })
	require.NoError(t, err)
	t.Cleanup(unsubscribe)

	n := p.MustNotifier().Add(toast.Success("Sucesso", ""))
	assert.Equal(t, []string{n.ID}, toasttest.IDs(last))

	p.Close()
	assert.Empty(t, last, "teardown delivers the empty list")
}

func TestProvider_Close_ends_lifetime(t *testing.T) {
	p := toast.NewProvider(toast.WithClock(toasttest.NewClock()))
	reg := p.Open()
	stale := p.MustNotifier()
	stale.Add(toast.Info("before close", ""))

	p.Close()

	_, err := p.Notifier()
	assert.ErrorIs(t, err, toast.ErrNoRegistry)

	assert.Empty(t, stale.Add(toast.Info("after close", "")).ID)
	assert.Empty(t, reg.List())

	assert.NotPanics(t, p.Close)
}

func TestProvider_reopen_starts_fresh_session(t *testing.T) {
	p := toast.NewProvider(toast.WithClock(toasttest.NewClock()))
	first := p.Open()
	first.Add(toast.Info("old session", ""))
	p.Close()

	second := p.Open()
	t.Cleanup(p.Close)

	assert.NotSame(t, first, second)
	assert.Empty(t, second.List())
}

func TestFromContext(t *testing.T) {
	t.Run("missing notifier is a usage error", func(t *testing.T) {
		n, err := toast.FromContext(context.Background())

		assert.Nil(t, n)
		assert.ErrorIs(t, err, toast.ErrNoNotifier)
		assert.True(t, toast.IsUsageError(err))
	})

	t.Run("returns injected notifier", func(t *testing.T) {
		p := toast.NewProvider(toast.WithClock(toasttest.NewClock()))
		reg := p.Open()
		t.Cleanup(p.Close)

		ctx := toast.WithNotifier(context.Background(), p.MustNotifier())
		n, err := toast.FromContext(ctx)
		require.NoError(t, err)

		added := n.Add(toast.Info("from context", ""))
		assert.Equal(t, []string{added.ID}, toasttest.IDs(reg.List()))
	})
}

func TestKind_Valid(t *testing.T) {
	assert.True(t, toast.KindSuccess.Valid())
	assert.True(t, toast.KindError.Valid())
	assert.True(t, toast.KindInfo.Valid())
	assert.False(t, toast.Kind("warning").Valid())
}
