package model

import (
	"bytes"
	"testing"
)

func TestSplitLines(t *testing.T) {
	t.Run("numbers lines from 1 and strips terminators", func(t *testing.T) {
		lines := SplitLines("in.txt", []byte("one\ntwo\nthree\n"))

		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		for i, want := range []string{"one", "two", "three"} {
			if string(lines[i].Text) != want {
				t.Errorf("line %d: expected %q, got %q", i, want, lines[i].Text)
			}
			if lines[i].Num != i+1 {
				t.Errorf("line %d: expected number %d, got %d", i, i+1, lines[i].Num)
			}
			if lines[i].File != "in.txt" {
				t.Errorf("line %d: expected file in.txt, got %q", i, lines[i].File)
			}
		}
	})

	t.Run("keeps a final line without terminator", func(t *testing.T) {
		lines := SplitLines("in.txt", []byte("one\ntwo"))

		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if string(lines[1].Text) != "two" {
			t.Errorf("expected %q, got %q", "two", lines[1].Text)
		}
	})

	t.Run("does not emit a line after the final terminator", func(t *testing.T) {
		lines := SplitLines("in.txt", []byte("only\n"))

		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
	})

	t.Run("empty input produces no lines", func(t *testing.T) {
		if lines := SplitLines("in.txt", nil); len(lines) != 0 {
			t.Fatalf("expected no lines, got %d", len(lines))
		}
	})

	t.Run("preserves empty lines", func(t *testing.T) {
		lines := SplitLines("in.txt", []byte("a\n\nb\n"))

		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		if len(lines[1].Text) != 0 {
			t.Errorf("expected empty middle line, got %q", lines[1].Text)
		}
	})

	t.Run("contents stay opaque bytes", func(t *testing.T) {
		raw := []byte{0x00, 0xFF, 0x07, '\n', 0xC3, 0x28}
		lines := SplitLines("bin.dat", raw)

		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if !bytes.Equal(lines[0].Text, []byte{0x00, 0xFF, 0x07}) {
			t.Errorf("unexpected first line bytes: %v", lines[0].Text)
		}
		if !bytes.Equal(lines[1].Text, []byte{0xC3, 0x28}) {
			t.Errorf("unexpected second line bytes: %v", lines[1].Text)
		}
	})
}

func TestLineBlank(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"spaces and tabs", " \t ", true},
		{"non-blank", "foo", false},
		{"indented content", "  foo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Line{File: "f", Num: 1, Text: []byte(tt.text)}
			if got := line.Blank(); got != tt.want {
				t.Errorf("Blank(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
