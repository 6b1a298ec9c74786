// Package selection provides pure line/offset arithmetic over a text blob
// treated as '\n'-joined lines. Offsets are byte offsets into the blob.
//
// Line boundaries are inclusive on both ends: a cursor sitting exactly on a
// line break belongs to the line it ends and to the line it begins, and the
// functions here resolve it to the first such line. LinesForRange and
// RangeForLines are exact inverses on line boundaries.
package selection

import "strings"

// SplitLines splits text on '\n'. No normalization is applied; '\r' bytes
// stay part of their line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// SplitAt cuts text at index, clamped into [0, len(text)].
func SplitAt(text string, index int) (before, after string) {
	if index < 0 {
		index = 0
	}
	if index > len(text) {
		index = len(text)
	}
	return text[:index], text[index:]
}

// CursorInLine returns the offset of cursor relative to the start of the line
// containing it: the distance since the last '\n' at or before cursor, or
// since the start of the text.
func CursorInLine(text string, cursor int) int {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	return cursor - (strings.LastIndex(text[:cursor], "\n") + 1)
}

// LinesForRange maps the character range [from, to] onto the line indices it
// touches. Each position resolves to the first line whose inclusive span
// [lineStart, lineStart+len] contains it; positions that match no line clamp
// to line 0.
func LinesForRange(text string, from, to int) (firstLine, lastLine int) {
	lines := SplitLines(text)
	return lineForPos(lines, from), lineForPos(lines, to)
}

func lineForPos(lines []string, pos int) int {
	start := 0
	for i, line := range lines {
		if pos >= start && pos <= start+len(line) {
			return i
		}
		start += len(line) + 1
	}
	return 0
}

// RangeForLines returns the character offsets spanning all content of lines
// [firstLine, lastLine] inclusive, including the line breaks strictly between
// them but not a trailing one.
func RangeForLines(text string, firstLine, lastLine int) (start, end int) {
	lines := SplitLines(text)
	if firstLine < 0 {
		firstLine = 0
	}
	if firstLine >= len(lines) {
		firstLine = len(lines) - 1
	}
	if lastLine >= len(lines) {
		lastLine = len(lines) - 1
	}

	for i := 0; i < firstLine && i < len(lines); i++ {
		start += len(lines[i]) + 1
	}
	end = start
	for i := firstLine; i <= lastLine; i++ {
		end += len(lines[i]) + 1
	}
	if lastLine >= firstLine {
		end-- // the final line contributes no trailing separator
	}
	return start, end
}
