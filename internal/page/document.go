package page

import (
	"sort"
	"strings"
	"time"

	"github.com/eykd/taskmark-go/internal/listedit"
	"github.com/eykd/taskmark-go/internal/selection"
)

// Document is a whole page: an optional frontmatter block followed by
// newline-joined item lines. Lines parse lazily through a memoized parser,
// and every mutation goes back through the raw text so Text() stays the
// single source of truth.
type Document struct {
	front    Frontmatter
	frontRaw string // raw frontmatter block, "" when absent
	lines    []string
	memo     MemoParser
}

// ParseDocument splits text into frontmatter and body lines. It is total: a
// malformed frontmatter block is treated as plain body lines.
func ParseDocument(text string) *Document {
	fm, block, body, err := ParseFrontmatter(text)
	if err != nil {
		fm, block, body = Frontmatter{}, "", text
	}
	return &Document{
		front:    fm,
		frontRaw: block,
		lines:    selection.SplitLines(body),
	}
}

// Text reassembles the page byte-for-byte.
func (d *Document) Text() string {
	return d.frontRaw + strings.Join(d.lines, "\n")
}

// Frontmatter returns the page metadata; the zero value when the page has no
// frontmatter block.
func (d *Document) Frontmatter() Frontmatter {
	return d.front
}

// Lines returns the body lines. The slice is shared; callers must treat it
// as read-only.
func (d *Document) Lines() []string {
	return d.lines
}

// LineCount returns the number of body lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// ItemAt parses the line at index i, reusing the memoized result when the
// line is unchanged. Out-of-range indices yield an empty note.
func (d *Document) ItemAt(i int) Item {
	if i < 0 || i >= len(d.lines) {
		return Item{Type: ItemNote}
	}
	return d.memo.Parse(i, d.lines[i])
}

// SetLine replaces the line at index i with raw, splicing it into the
// document text through the selection arithmetic so the surrounding bytes
// are untouched.
func (d *Document) SetLine(i int, raw string) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	text := strings.Join(d.lines, "\n")
	start, end := selection.RangeForLines(text, i, i)
	before, _ := selection.SplitAt(text, start)
	_, after := selection.SplitAt(text, end)
	d.lines = selection.SplitLines(before + raw + after)
}

// MutateLine runs a mutation closure against the item at line i and splices
// the resulting raw line back into the page. An error from the closure
// leaves the document untouched.
func (d *Document) MutateLine(i int, fn func(*Writable) error) error {
	it := d.ItemAt(i).Clone()
	if err := Mutate(&it, fn); err != nil {
		return err
	}
	d.SetLine(i, it.Raw)
	return nil
}

// SortTasks reorders the body lines with a stable sort over Compare. The
// comparator reports incomparable pairs as equal, so stability is what keeps
// notes in place and children attached to their parents.
func (d *Document) SortTasks() {
	items := make([]Item, len(d.lines))
	for i := range d.lines {
		items[i] = d.ItemAt(i)
	}
	idx := make([]int, len(d.lines))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return Compare(items[idx[a]], items[idx[b]]) < 0
	})

	sorted := make([]string, len(d.lines))
	for i, j := range idx {
		sorted[i] = d.lines[j]
	}
	d.lines = sorted
	d.memo.Reset()
}

// Indent shifts the inclusive line range [first, last] by one indent unit.
func (d *Document) Indent(first, last int, mode listedit.Mode) {
	if first < 0 {
		first = 0
	}
	if last >= len(d.lines) {
		last = len(d.lines) - 1
	}
	if first > last {
		return
	}
	shifted := listedit.Indent(d.lines[first:last+1], mode)
	copy(d.lines[first:], shifted)
	d.memo.Reset()
}

// SetDue is a convenience over MutateLine for attaching or clearing a due
// date on the task at line i.
func (d *Document) SetDue(i int, due *time.Time) error {
	return d.MutateLine(i, func(w *Writable) error {
		w.SetDueDate(due)
		return nil
	})
}
