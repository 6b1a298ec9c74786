package page

import (
	"time"

	"github.com/eykd/taskmark-go/internal/dateutil"
)

// statusWeight orders task statuses for sorting, highest first.
var statusWeight = map[Status]int{
	StatusImportant:  10000,
	StatusInProgress: 1000,
	StatusIncomplete: 100,
	StatusQuestion:   10,
	StatusCompleted:  1,
}

// Compare orders two items for an external stable sort over a whole page.
// It is deliberately partial: incomparable pairs report 0 and rely on the
// sort's stability to stay where they are. That is what keeps nested items
// travelling with their parents, so callers must use a stable sort.
//
// Pairs reporting 0: anything involving a non-task, tasks at different
// nesting depths, and tasks whose due date and status both match. Otherwise
// dated tasks sort before undated ones, earlier calendar days first, then
// higher status weight first.
func Compare(a, b Item) int {
	if a.Type != ItemTask || b.Type != ItemTask {
		return 0
	}
	if a.Indent() != b.Indent() {
		return 0
	}
	if sameDue(a.Due, b.Due) && a.Status == b.Status {
		return 0
	}

	switch {
	case a.Due != nil && b.Due == nil:
		return -1
	case a.Due == nil && b.Due != nil:
		return 1
	case a.Due != nil && b.Due != nil:
		ad, bd := dateutil.Truncate(*a.Due), dateutil.Truncate(*b.Due)
		if ad.Before(bd) {
			return -1
		}
		if bd.Before(ad) {
			return 1
		}
	}

	aw, bw := statusWeight[a.Status], statusWeight[b.Status]
	switch {
	case aw > bw:
		return -1
	case aw < bw:
		return 1
	}
	return 0
}

func sameDue(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return dateutil.SameDay(*a, *b)
}
