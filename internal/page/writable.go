package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/eykd/taskmark-go/internal/dateutil"
)

// UnsupportedFieldError is returned when a mutation names a field outside the
// closed set of writable properties (type, status, dueDate). It signals
// programmer error; the item under mutation is left untouched.
type UnsupportedFieldError struct {
	Field string
}

func (e UnsupportedFieldError) Error() string {
	return fmt.Sprintf("unsupported mutation field: %s", e.Field)
}

// Writable is a short-lived edit surface over a cloned Item. Exactly three
// properties are assignable; every setter re-derives Raw and Tokens in the
// same step, so the clone never holds fields that disagree with its raw text.
//
// A Writable is created by Mutate and must not outlive the mutation closure.
type Writable struct {
	item Item
}

// Item returns the current state of the clone under mutation.
func (w *Writable) Item() Item {
	return w.item
}

// SetStatus replaces the task's status marker character in the raw line via
// targeted substring replacement, then updates the status field and the
// status token in place. Items that are not tasks are left unchanged.
func (w *Writable) SetStatus(s Status) {
	if w.item.Type != ItemTask {
		return
	}
	if _, ok := statusChar[s]; !ok {
		return
	}
	tok := w.item.token(TokenStatus)
	if tok == nil {
		return
	}
	// The marker is the first occurrence of its text: it sits immediately
	// after the leading tabs, before any content that could repeat it.
	w.item.Raw = strings.Replace(w.item.Raw, tok.Match, s.Marker(), 1)
	tok.Match = s.Marker()
	tok.Text = string(s)
	w.item.Status = s
}

// SetDueDate attaches, moves, or removes the trailing due-date token. A nil
// date clears it. Unlike SetStatus this path patches the raw line and then
// fully re-parses it, assigning every field from the result. Items that are
// not tasks are left unchanged.
func (w *Writable) SetDueDate(d *time.Time) {
	if w.item.Type != ItemTask {
		return
	}

	tok := w.item.token(TokenDueDate)
	raw := w.item.Raw

	switch {
	case tok == nil && d == nil:
		return
	case tok == nil:
		sep := " "
		if raw == "" || endsInWhitespace(raw) {
			sep = ""
		}
		raw += sep + "->" + dateutil.FormatISO(*d)
	case d == nil:
		raw = strings.TrimSuffix(raw, tok.Match)
	default:
		// Keep the token's own separator (with or without the leading
		// space) and swap only the date text.
		prefix := strings.TrimSuffix(tok.Match, tok.Text)
		raw = strings.TrimSuffix(raw, tok.Match) + prefix + dateutil.FormatISO(*d)
	}

	w.item = Parse(raw)
}

// SetType rewrites the line's leading syntax for the new type and re-parses
// the result. Becoming a task prepends "[ ] " after the leading tabs and
// forces status to incomplete; becoming a heading prepends "# " after
// trimming leading whitespace; becoming a note strips the old marker only.
func (w *Writable) SetType(t ItemType) {
	raw := stripTypeSyntax(w.item.Raw)

	switch t {
	case ItemTask:
		i := 0
		for i < len(raw) && raw[i] == '\t' {
			i++
		}
		raw = raw[:i] + StatusIncomplete.Marker() + raw[i:]
	case ItemHeading:
		raw = headingMarker + strings.TrimLeft(raw, " \t")
	}

	w.item = Parse(raw)

	// The reparse is not trusted for status: a new task is always
	// incomplete, and anything else carries no status at all.
	if t == ItemTask {
		w.item.Status = StatusIncomplete
	} else {
		w.item.Status = ""
	}
}

// Set assigns a named field, dispatching into the closed setter set. Any
// field name outside that set fails with UnsupportedFieldError; a value of
// the wrong Go type for a known field is also rejected.
func (w *Writable) Set(field string, value any) error {
	switch field {
	case "type":
		t, ok := value.(ItemType)
		if !ok {
			return fmt.Errorf("set type: want ItemType, got %T", value)
		}
		w.SetType(t)
	case "status":
		s, ok := value.(Status)
		if !ok {
			return fmt.Errorf("set status: want Status, got %T", value)
		}
		w.SetStatus(s)
	case "dueDate":
		switch d := value.(type) {
		case nil:
			w.SetDueDate(nil)
		case *time.Time:
			w.SetDueDate(d)
		case time.Time:
			w.SetDueDate(&d)
		default:
			return fmt.Errorf("set dueDate: want *time.Time, got %T", value)
		}
	default:
		return UnsupportedFieldError{Field: field}
	}
	return nil
}

// Mutate runs fn over a Writable wrapping a deep clone of item. The clone is
// copied back onto item only after fn returns nil, so a failing mutation
// leaves the original completely untouched and a successful one updates it
// atomically from the caller's perspective.
func Mutate(item *Item, fn func(*Writable) error) error {
	w := &Writable{item: item.Clone()}
	if err := fn(w); err != nil {
		return err
	}
	*item = w.item
	return nil
}

// stripTypeSyntax removes the line's current type marker: a task marker
// (keeping leading tabs) or a heading marker. Notes pass through unchanged.
func stripTypeSyntax(raw string) string {
	if m := taskMarkerRE.FindStringSubmatch(raw); m != nil {
		if _, ok := charStatus[m[2][0]]; ok {
			return m[1] + raw[len(m[0]):]
		}
	}
	if strings.HasPrefix(raw, headingMarker) {
		return raw[len(headingMarker):]
	}
	return raw
}

func endsInWhitespace(s string) bool {
	c := s[len(s)-1]
	return c == ' ' || c == '\t'
}
