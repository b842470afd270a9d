// Package domain implements the change-file parser and the merge engine.
package domain

import "fmt"

// StructureError reports a @y or @z marker found with no open @x section.
type StructureError struct {
	File string
	Num  int
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("change file missing @x at %s(%d)", e.File, e.Num)
}

// UnterminatedSectionError reports a section whose @x header was never
// followed by @y before the end of the change file.
type UnterminatedSectionError struct {
	File string
	Num  int
}

func (e *UnterminatedSectionError) Error() string {
	return fmt.Sprintf("change file ended after @x at %s(%d)", e.File, e.Num)
}

// NoMatchError reports a section whose old block does not occur in the
// remaining text. File and Num locate the section's @x header in the change
// file. Hint, when non-empty, is a unified diff against the closest candidate
// region of the text.
type NoMatchError struct {
	File string
	Num  int
	Hint string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("change file section does not match [%s(%d)]", e.File, e.Num)
}

// Warning is a non-fatal parser diagnostic. The only one currently produced
// is a missing @z at the end of a change file.
type Warning struct {
	File    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s [%s]", w.Message, w.File)
}
