package printer

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/barber/internal/core/toast"
	"github.com/colonyops/barber/pkg/tuitest"
)

func TestPrinter_Toasts_prints_each_notification_once(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	first := toast.Notification{ID: "t1", Kind: toast.KindSuccess, Title: "Sucesso", Description: "Toast adicionado", CreatedAt: time.Now()}
	second := toast.Notification{ID: "t2", Kind: toast.KindError, Title: "Erro"}

	p.Toasts([]toast.Notification{first})
	p.Toasts([]toast.Notification{first, second})
	p.Toasts([]toast.Notification{second})

	out := tuitest.StripANSI(buf.String())
	assert.Equal(t, 1, strings.Count(out, "Sucesso"))
	assert.Equal(t, 1, strings.Count(out, "Erro"))
	assert.Contains(t, out, "  Toast adicionado")
}

func TestPrinter_Toasts_reprints_reused_id_after_removal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	n := toast.Notification{ID: "t1", Kind: toast.KindInfo, Title: "again"}

	p.Toasts([]toast.Notification{n})
	p.Toasts(nil)
	p.Toasts([]toast.Notification{n})

	assert.Equal(t, 2, strings.Count(buf.String(), "again"))
}

func TestPrinter_subscribes_to_registry(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	reg := toast.NewRegistry()
	t.Cleanup(reg.Close)

	unsubscribe := reg.Subscribe(p.Toasts)
	t.Cleanup(unsubscribe)

	reg.Add(toast.Success("Profile updated", ""))

	assert.Contains(t, tuitest.StripANSI(buf.String()), "Profile updated")
}

func TestPrinter_FieldErrors(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	err := criterio.NewFieldErrors("email", assert.AnError)

	require.True(t, p.FieldErrors(err))
	assert.Contains(t, tuitest.StripANSI(buf.String()), "email "+assert.AnError.Error())

	assert.False(t, p.FieldErrors(assert.AnError))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)

	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}

func TestPrinter_Success_detail(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Success("Signed in", "as johndoe@example.com")

	out := tuitest.StripANSI(buf.String())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Signed in")
	assert.Equal(t, "  as johndoe@example.com", lines[1])
}
