package domain

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	m "webch.dev/pkg/webch/internal/model"
)

// Apply splices the sections of one change file into text and returns the
// resulting line sequence.
//
// Sections are matched in order against a forward-only cursor: each old block
// is searched only in the part of the text that no earlier section consumed,
// so sections must appear in the same relative order as their targets. The
// cursor never rewinds. Lines the old blocks did not touch are copied through
// unchanged, keeping their original file and line number; spliced-in lines
// keep their change-file provenance.
//
// A section that cannot be matched aborts the whole application with a
// NoMatchError; the partially built output is discarded.
func Apply(text []m.Line, sections []m.Section) ([]m.Line, error) {
	out := make([]m.Line, 0, len(text))
	cur := 0

	for _, section := range sections {
		pos, ok := findBlock(text[cur:], section.Old)
		if !ok {
			return nil, &NoMatchError{
				File: section.Header.File,
				Num:  section.Header.Num,
				Hint: nearMiss(text[cur:], section.Old),
			}
		}

		out = append(out, text[cur:cur+pos]...)
		cur += pos + len(section.Old)
		out = append(out, section.New...)
	}

	out = append(out, text[cur:]...)

	return out, nil
}

// findBlock returns the first offset in text where old occurs as a contiguous
// run of byte-equal lines. Only contents are compared, never file names or
// line numbers. An empty old block matches immediately, even when text is
// exhausted.
func findBlock(text, old []m.Line) (int, bool) {
	for i := 0; i+len(old) <= len(text); i++ {
		if blockEqual(text[i:i+len(old)], old) {
			return i, true
		}
	}

	return 0, false
}

func blockEqual(window, old []m.Line) bool {
	for i := range old {
		if !bytes.Equal(window[i].Text, old[i].Text) {
			return false
		}
	}

	return true
}

// nearMiss builds a unified diff between the old block and the candidate
// window of the remaining text that agrees with it on the most lines. It is
// purely diagnostic, used to explain a failed match. Returns "" when there is
// no window sharing at least one line.
func nearMiss(text, old []m.Line) string {
	if len(old) == 0 || len(text) < len(old) {
		return ""
	}

	best, bestScore := -1, 0
	for i := 0; i+len(old) <= len(text); i++ {
		score := 0
		for j := range old {
			if bytes.Equal(text[i+j].Text, old[j].Text) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return ""
	}

	window := text[best : best+len(old)]
	diff := difflib.UnifiedDiff{
		A:        blockStrings(old),
		FromFile: fmt.Sprintf("%s(%d)", old[0].File, old[0].Num),
		B:        blockStrings(window),
		ToFile:   fmt.Sprintf("%s(%d)", window[0].File, window[0].Num),
		Context:  2,
	}

	s, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return s
}

func blockStrings(lines []m.Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = string(line.Text) + "\n"
	}

	return out
}
