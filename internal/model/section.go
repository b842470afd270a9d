package model

// Section is one @x/@y/@z unit of a change file: the @x header line that
// opened it, the lines to locate in the current text (Old) and the lines to
// splice in at the match (New). New may be empty for a pure deletion; Old is
// empty only when the change file had no non-blank content before the @y
// marker, which turns the section into a pure insertion.
type Section struct {
	Header Line
	Old    []Line
	New    []Line
}
