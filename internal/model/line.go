// Package model defines the data structures shared by the webch pipeline.
package model

import "bytes"

// Path represents a file system path.
type Path string

// Line is one physical line of a text file. File and Num record where the
// line came from; Text holds the raw bytes with the line terminator stripped.
// A Line is never modified after creation.
type Line struct {
	File string
	Num  int
	Text []byte
}

// Blank reports whether the line is empty after leading ASCII whitespace is
// removed.
func (l Line) Blank() bool {
	return len(bytes.TrimLeft(l.Text, " \t\n\f\r")) == 0
}

// SplitLines cuts raw file contents into Lines numbered from 1. Lines are
// delimited by LF and the terminator is stripped; on Windows a CR directly
// before the LF is stripped as well, everywhere else it stays part of the
// line. Contents are opaque bytes — no encoding validation happens here or
// anywhere downstream, so non-text and mixed-encoding files pass through
// unchanged.
func SplitLines(name string, data []byte) []Line {
	var lines []Line

	for num := 1; len(data) > 0; num++ {
		text := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			text = data[:i]
			data = data[i+1:]
			if stripCR && len(text) > 0 && text[len(text)-1] == '\r' {
				text = text[:len(text)-1]
			}
		} else {
			// Last line without a terminator.
			data = nil
		}

		lines = append(lines, Line{File: name, Num: num, Text: text})
	}

	return lines
}
