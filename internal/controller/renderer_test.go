package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "webch.dev/pkg/webch/internal/model"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{100000, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, digits(tt.n), "digits(%d)", tt.n)
	}
}

func TestGutterWidth(t *testing.T) {
	lines := []m.Line{
		{File: "a.w", Num: 3, Text: []byte("x")},
		{File: "changes.ch", Num: 128, Text: []byte("y")},
	}

	// Widest filename (10) + digits of largest number (3) + 2.
	assert.Equal(t, 15, gutterWidth(lines))

	assert.Equal(t, 3, gutterWidth(nil), "empty output still has a minimal gutter")
}

func TestListingRenderer(t *testing.T) {
	t.Run("pads the provenance column and separates with a pipe", func(t *testing.T) {
		lines := []m.Line{
			{File: "a.w", Num: 1, Text: []byte("first")},
			{File: "a.w", Num: 10, Text: []byte("tenth")},
		}

		var out bytes.Buffer
		require.NoError(t, NewListingRenderer().Render(&out, lines))

		got := strings.Split(out.String(), "\n")
		require.Len(t, got, 3) // two lines plus trailing empty split
		assert.Equal(t, "a.w(1)  | first", got[0])
		assert.Equal(t, "a.w(10) | tenth", got[1])
	})

	t.Run("escapes bytes outside printable ASCII", func(t *testing.T) {
		renderer := NewListingRenderer()
		lines := []m.Line{{File: "b.dat", Num: 1, Text: []byte{'o', 'k', 0x09, 0xFF}}}

		var out bytes.Buffer
		require.NoError(t, renderer.Render(&out, lines))

		want := "ok" + renderer.escape.Render("<09>") + renderer.escape.Render("<FF>")
		assert.Contains(t, out.String(), want)
		assert.NotContains(t, out.String(), "\x09", "raw control byte must not leak through")
	})

	t.Run("printable boundary bytes stay verbatim", func(t *testing.T) {
		renderer := NewListingRenderer()

		assert.Equal(t, " ~", renderer.escapeText([]byte{0x20, 0x7E}))
		assert.Equal(t, renderer.escape.Render("<1F>")+renderer.escape.Render("<7F>"),
			renderer.escapeText([]byte{0x1F, 0x7F}))
	})
}

func TestRawRenderer(t *testing.T) {
	t.Run("passes bytes through unescaped with platform terminator", func(t *testing.T) {
		lines := []m.Line{{File: "b.dat", Num: 1, Text: []byte{0x00, 0xFF}}}

		var out bytes.Buffer
		require.NoError(t, NewRawRenderer().Render(&out, lines))

		want := "b.dat(1) | " + string([]byte{0x00, 0xFF}) + m.Terminator
		assert.Equal(t, want, out.String())
	})

	t.Run("matches the listing layout for printable content", func(t *testing.T) {
		lines := []m.Line{
			{File: "a.w", Num: 1, Text: []byte("alpha")},
			{File: "a.w", Num: 22, Text: []byte("beta")},
		}

		var listing, raw bytes.Buffer
		require.NoError(t, NewListingRenderer().Render(&listing, lines))
		require.NoError(t, NewRawRenderer().Render(&raw, lines))

		normalized := strings.ReplaceAll(raw.String(), m.Terminator, "\n")
		assert.Equal(t, listing.String(), normalized,
			"renderers must agree except for escaping and terminators")
	})
}
