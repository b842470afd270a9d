// Package controller provides the output side of webch: the renderers for
// the final line sequence and the UI used for progress and summaries.
package controller

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "webch.dev/pkg/webch/internal/model"
)

// Renderer writes a finished line sequence to w.
type Renderer interface {
	Render(w io.Writer, lines []m.Line) error
}

// gutter formats the provenance column for one line.
func gutter(line m.Line) string {
	return fmt.Sprintf("%s(%d)", line.File, line.Num)
}

// gutterWidth computes the provenance column width from the widest filename
// and the largest line number anywhere in the output, so every row aligns.
func gutterWidth(lines []m.Line) int {
	maxFile, maxNum := 0, 0
	for _, line := range lines {
		if len(line.File) > maxFile {
			maxFile = len(line.File)
		}
		if line.Num > maxNum {
			maxNum = line.Num
		}
	}

	return maxFile + digits(maxNum) + 2
}

func digits(n int) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}

	return count
}

// ListingRenderer writes an annotated terminal listing. Bytes outside
// printable ASCII (0x20-0x7E) are shown as a reverse-video <XX> hex escape
// so control bytes and non-ASCII content stay visible.
type ListingRenderer struct {
	escape lipgloss.Style
}

// NewListingRenderer creates a ListingRenderer.
func NewListingRenderer() *ListingRenderer {
	return &ListingRenderer{escape: lipgloss.NewStyle().Reverse(true)}
}

// Render writes every line as "<file>(<num>) | <escaped text>\n".
func (r *ListingRenderer) Render(w io.Writer, lines []m.Line) error {
	width := gutterWidth(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-*s | %s\n", width, gutter(line), r.escapeText(line.Text)); err != nil {
			return err
		}
	}

	return nil
}

func (r *ListingRenderer) escapeText(text []byte) string {
	var b strings.Builder
	for _, c := range text {
		if c >= 0x20 && c <= 0x7E {
			b.WriteByte(c)
		} else {
			b.WriteString(r.escape.Render(fmt.Sprintf("<%02X>", c)))
		}
	}

	return b.String()
}

// RawRenderer writes the same provenance column followed by the raw line
// bytes and the platform line terminator. Bytes pass through unescaped, so
// the payload of the output is byte-accurate.
type RawRenderer struct{}

// NewRawRenderer creates a RawRenderer.
func NewRawRenderer() *RawRenderer {
	return &RawRenderer{}
}

// Render writes every line as "<file>(<num>) | <raw bytes><terminator>".
func (r *RawRenderer) Render(w io.Writer, lines []m.Line) error {
	bw := bufio.NewWriter(w)
	width := gutterWidth(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintf(bw, "%-*s | ", width, gutter(line)); err != nil {
			return err
		}
		if _, err := bw.Write(line.Text); err != nil {
			return err
		}
		if _, err := bw.WriteString(m.Terminator); err != nil {
			return err
		}
	}

	return bw.Flush()
}
