// Package listedit implements the list-editing rules applied around single
// edit events: what a freshly inserted line should start with when the user
// presses enter inside a list, and tab-based indentation of line ranges.
package listedit

import (
	"fmt"
	"regexp"
	"strconv"
)

// Outcome classifies the result of a continuation attempt. The three values
// are mutually exclusive.
type Outcome int

const (
	// NoMatch means no rule recognized the line; the split is returned
	// unchanged.
	NoMatch Outcome = iota
	// Continued means a rule matched and its marker was prepended to the
	// post-cursor text.
	Continued
	// Ended means the line consisted of nothing but its marker with the
	// cursor at the end: the user pressed enter on an empty list item, so
	// the caller should collapse the marker instead of propagating it.
	Ended
)

// Rule pairs a marker pattern with the continuation it produces. Pattern must
// be anchored at the start of the line. When Next is nil the matched marker
// is reused unchanged; otherwise Next derives the continuation text from it.
type Rule struct {
	Pattern *regexp.Regexp
	Next    func(marker string) string
}

// Result is the outcome of Continue: the text left on the current line and
// the text the new line should hold.
type Result struct {
	Outcome Outcome
	Current string
	Next    string
}

var (
	cancelledMarkerRE = regexp.MustCompile(`^\t*\[-\] `)
	anyTaskMarkerRE   = regexp.MustCompile(`^\t*\[.\] `)
	unorderedMarkerRE = regexp.MustCompile(`^\t*[-*] `)
	numberedMarkerRE  = regexp.MustCompile(`^\t*(\d+)\. `)
	bareIndentRE      = regexp.MustCompile(`^\t+`)

	taskStatusCharRE = regexp.MustCompile(`\[.\] `)
)

// DefaultRules returns the built-in rule set in precedence order: the
// cancelled marker (continued unchanged), any task marker (continued as a
// fresh incomplete task), unordered markers, numbered markers (incremented),
// and bare indentation. The marker rules all precede the bare-indentation
// rule so that indentation alone only matches lines whose tabs are not
// followed by a recognized marker.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: cancelledMarkerRE},
		{Pattern: anyTaskMarkerRE, Next: freshTaskMarker},
		{Pattern: unorderedMarkerRE},
		{Pattern: numberedMarkerRE, Next: nextNumberMarker},
		{Pattern: bareIndentRE},
	}
}

// freshTaskMarker continues any task marker as an incomplete one, keeping the
// indentation: finishing one task starts a blank next task regardless of the
// previous task's status.
func freshTaskMarker(marker string) string {
	return taskStatusCharRE.ReplaceAllString(marker, "[ ] ")
}

// nextNumberMarker increments the integer parsed from a numbered marker and
// re-appends ". ".
func nextNumberMarker(marker string) string {
	m := numberedMarkerRE.FindStringSubmatch(marker)
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return marker
	}
	return fmt.Sprintf("%d. ", n+1)
}

// Continue decides what a newly inserted line starts with when the cursor
// splits line at cursor. The first rule whose pattern matches a prefix of
// line wins. If the matched marker is the entire pre-cursor content and the
// cursor sits at end-of-line, the item is empty and the list ends: both
// halves are cleared so the caller can collapse the marker.
func Continue(line string, rules []Rule, cursor int) Result {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(line) {
		cursor = len(line)
	}
	current, next := line[:cursor], line[cursor:]

	for _, r := range rules {
		marker := r.Pattern.FindString(line)
		if marker == "" {
			continue
		}
		if marker == current && cursor == len(line) {
			return Result{Outcome: Ended}
		}
		cont := marker
		if r.Next != nil {
			cont = r.Next(marker)
		}
		return Result{Outcome: Continued, Current: current, Next: cont + next}
	}

	return Result{Outcome: NoMatch, Current: current, Next: next}
}
