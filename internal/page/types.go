// Package page provides the line-level domain model for taskmark pages:
// parsing raw lines into Items, serializing them back, and the controlled
// mutation surface that keeps both representations consistent.
package page

import "time"

// ItemType is the mutually exclusive variant tag of a parsed line.
type ItemType string

const (
	// ItemNote is any line that is neither a heading nor a task, including
	// blank lines.
	ItemNote ItemType = "note"
	// ItemHeading is a line starting with "# ".
	ItemHeading ItemType = "heading"
	// ItemTask is a line carrying a "[<char>] " marker after optional
	// leading tabs.
	ItemTask ItemType = "task"
)

// Status is the state of a task, encoded as a single character inside the
// task marker. The character set is a compatibility contract with existing
// documents and must not be changed without a migration.
type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "inProgress"
	StatusImportant  Status = "important"
	StatusQuestion   Status = "question"
)

// statusChar maps each status to its marker character.
var statusChar = map[Status]byte{
	StatusIncomplete: ' ',
	StatusCompleted:  'x',
	StatusInProgress: '/',
	StatusImportant:  '!',
	StatusQuestion:   '?',
}

// charStatus is the inverse of statusChar. Characters outside this table do
// not form tasks; such lines degrade to notes.
var charStatus = map[byte]Status{
	' ': StatusIncomplete,
	'x': StatusCompleted,
	'/': StatusInProgress,
	'!': StatusImportant,
	'?': StatusQuestion,
}

// Marker returns the full task marker for s, e.g. "[x] ".
func (s Status) Marker() string {
	return "[" + string(statusChar[s]) + "] "
}

// TokenType identifies the semantic role of a parsed fragment.
type TokenType string

const (
	// TokenHeading is the "# " heading marker.
	TokenHeading TokenType = "heading"
	// TokenStatus is the "[<char>] " task marker.
	TokenStatus TokenType = "status"
	// TokenText is plain line content between other tokens.
	TokenText TokenType = "text"
	// TokenDueDate is a trailing "->YYYY-MM-DD" fragment, including the
	// single space that may precede it.
	TokenDueDate TokenType = "dueDate"
)

// Token records one parsed fragment of a line: its role, the exact substring
// it was matched from, and its decoded text. Tokens are the provenance trail
// that lets the mutation layer edit Raw surgically instead of re-serializing
// the whole line.
type Token struct {
	Type  TokenType
	Match string
	Text  string
}

// Item is the parsed structured form of one page line. Raw is authoritative:
// all other fields are derivable from it at all times, and Parse(item.Raw)
// reproduces item field-by-field.
//
// Leading tabs on Raw encode nesting depth. They are never lifted into a
// typed field; consumers inspect them directly via Indent.
type Item struct {
	Raw    string
	Type   ItemType
	Status Status     // empty unless Type == ItemTask
	Due    *time.Time // nil unless Type == ItemTask with a decodable due date
	Tokens []Token
}

// Indent returns the leading-tab prefix of the item's raw line.
func (it Item) Indent() string {
	i := 0
	for i < len(it.Raw) && it.Raw[i] == '\t' {
		i++
	}
	return it.Raw[:i]
}

// Clone returns a deep copy of the item. The token slice is copied so that
// mutating the clone never aliases the original.
func (it Item) Clone() Item {
	out := it
	if it.Tokens != nil {
		out.Tokens = append([]Token(nil), it.Tokens...)
	}
	if it.Due != nil {
		d := *it.Due
		out.Due = &d
	}
	return out
}

// token returns a pointer to the first token of type t, or nil.
func (it *Item) token(t TokenType) *Token {
	for i := range it.Tokens {
		if it.Tokens[i].Type == t {
			return &it.Tokens[i]
		}
	}
	return nil
}
