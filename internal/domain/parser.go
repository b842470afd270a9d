package domain

import (
	"bytes"

	m "webch.dev/pkg/webch/internal/model"
)

// Change-file markers. Detection is a prefix test: trailing text on a marker
// line is ignored and never stored.
var (
	markerBegin = []byte("@x")
	markerSep   = []byte("@y")
	markerEnd   = []byte("@z")
)

// ParseSections scans the lines of one change file into its sections.
//
// Each section starts at a line with the @x prefix, collects its old block up
// to @y and its new block up to @z. Lines before the first @x and between
// sections are skipped. A @y or @z with no open section is a StructureError;
// a section whose @y is never reached is an UnterminatedSectionError. A
// missing @z at end of file closes the last section anyway and is reported as
// a Warning rather than an error.
//
// The parser is pure: diagnostics are returned, never printed.
func ParseSections(lines []m.Line) ([]m.Section, []Warning, error) {
	var sections []m.Section
	var warnings []Warning

	cur := 0
	next := func() (m.Line, bool) {
		if cur >= len(lines) {
			return m.Line{}, false
		}
		line := lines[cur]
		cur++
		return line, true
	}

	for {
		// Find the @x header.
		var header m.Line
		for {
			line, ok := next()
			if !ok {
				return sections, warnings, nil
			}
			if bytes.HasPrefix(line.Text, markerBegin) {
				header = line
				break
			}
			if bytes.HasPrefix(line.Text, markerSep) || bytes.HasPrefix(line.Text, markerEnd) {
				return nil, warnings, &StructureError{File: line.File, Num: line.Num}
			}
		}

		// Collect the old block up to @y. Blank lines before the first
		// non-blank line are dropped; once a line made it in, everything
		// after it is kept verbatim.
		var oldBlock []m.Line
		for {
			line, ok := next()
			if !ok {
				return nil, warnings, &UnterminatedSectionError{File: header.File, Num: header.Num}
			}
			if bytes.HasPrefix(line.Text, markerSep) {
				break
			}
			if len(oldBlock) > 0 || !line.Blank() {
				oldBlock = append(oldBlock, line)
			}
		}

		// Collect the new block up to @z.
		var newBlock []m.Line
		for {
			line, ok := next()
			if !ok {
				warnings = append(warnings, Warning{
					File:    header.File,
					Message: "missing @z at end of change file",
				})
				break
			}
			if bytes.HasPrefix(line.Text, markerEnd) {
				break
			}
			newBlock = append(newBlock, line)
		}

		sections = append(sections, m.Section{Header: header, Old: oldBlock, New: newBlock})
	}
}
