// Package diffengine compares two texts line by line. The walk is a
// greedy two-cursor heuristic, not a minimal edit script; its output,
// including the tie-break toward removals, is part of the comparison
// format existing tooling consumes and must stay byte-stable.
package diffengine

import "strings"

// Op tags one emitted line.
type Op string

const (
	Added     Op = "added"
	Removed   Op = "removed"
	Unchanged Op = "unchanged"
)

// Entry is one line of comparison output. LineNumber is 1-based: for
// removed entries it refers to the old text, otherwise to the new text.
type Entry struct {
	Op         Op     `json:"type"`
	Line       string `json:"line"`
	LineNumber int    `json:"lineNumber"`
}

// Diff walks the two texts with one cursor per side. On a mismatch each
// side searches forward for the other side's current line; the nearer
// match decides whether the old line is dropped or the new line is
// inserted, and an old-side match at an equal offset wins.
func Diff(oldText, newText string) []Entry {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	var entries []Entry
	i, j := 0, 0
	for {
		switch {
		case i >= len(oldLines) && j >= len(newLines):
			return entries
		case i >= len(oldLines):
			entries = append(entries, Entry{Op: Added, Line: newLines[j], LineNumber: j + 1})
			j++
		case j >= len(newLines):
			entries = append(entries, Entry{Op: Removed, Line: oldLines[i], LineNumber: i + 1})
			i++
		case oldLines[i] == newLines[j]:
			entries = append(entries, Entry{Op: Unchanged, Line: newLines[j], LineNumber: j + 1})
			i++
			j++
		default:
			oldOffset := forwardMatch(oldLines[i+1:], newLines[j])
			newOffset := forwardMatch(newLines[j+1:], oldLines[i])
			if newOffset >= 0 && (oldOffset < 0 || newOffset < oldOffset) {
				entries = append(entries, Entry{Op: Added, Line: newLines[j], LineNumber: j + 1})
				j++
			} else {
				entries = append(entries, Entry{Op: Removed, Line: oldLines[i], LineNumber: i + 1})
				i++
			}
		}
	}
}

// forwardMatch returns the offset of the first occurrence of line in
// rest, or -1 when it never occurs again.
func forwardMatch(rest []string, line string) int {
	for k, candidate := range rest {
		if candidate == line {
			return k
		}
	}
	return -1
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
