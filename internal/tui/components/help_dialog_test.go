package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/barber/pkg/tuitest"
)

func TestHelpDialog_View(t *testing.T) {
	h := NewHelpDialog("# Keys\n\n- `x` dismiss newest toast\n", 60)

	view := tuitest.StripANSI(h.View())

	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "dismiss newest toast")
	assert.Contains(t, view, "esc/? close")
}

func TestCenter(t *testing.T) {
	row := strings.Repeat(".", 40)
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = row
	}
	bg := strings.Join(rows, "\n")

	out := tuitest.StripANSI(Center(bg, "HELLO", 40, 20))

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[9], "HELLO")
	assert.NotContains(t, lines[0], "HELLO")
}
