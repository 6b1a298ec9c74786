package page

import (
	"regexp"
	"strings"

	"github.com/eykd/taskmark-go/internal/dateutil"
)

var (
	// taskMarkerRE matches optional leading tabs followed by a "[<char>] "
	// marker. The captured character is validated against the status table
	// separately; unknown characters leave the line a note.
	taskMarkerRE = regexp.MustCompile(`^(\t*)\[(.)\] `)

	// dueDateRE matches a trailing due-date token, including the single
	// space that may precede it.
	dueDateRE = regexp.MustCompile(` ?->(\d{4}-\d{2}-\d{2})$`)
)

const headingMarker = "# "

// Parse turns one raw line into an Item. It is total: every input produces a
// result, and lines that match no recognized shape degrade to notes with an
// empty token list. Recognition order is heading, then task, then note.
func Parse(line string) Item {
	if strings.HasPrefix(line, headingMarker) {
		return parseHeading(line)
	}
	if m := taskMarkerRE.FindStringSubmatch(line); m != nil {
		if status, ok := charStatus[m[2][0]]; ok {
			return parseTask(line, m[1], status)
		}
	}
	return Item{Raw: line, Type: ItemNote}
}

func parseHeading(line string) Item {
	it := Item{
		Raw:    line,
		Type:   ItemHeading,
		Tokens: []Token{{Type: TokenHeading, Match: headingMarker}},
	}
	if rest := line[len(headingMarker):]; rest != "" {
		it.Tokens = append(it.Tokens, Token{Type: TokenText, Match: rest, Text: rest})
	}
	return it
}

func parseTask(line, indent string, status Status) Item {
	it := Item{
		Raw:    line,
		Type:   ItemTask,
		Status: status,
		Tokens: []Token{{Type: TokenStatus, Match: status.Marker(), Text: string(status)}},
	}

	body := line[len(indent)+len(status.Marker()):]

	var due *Token
	if loc := dueDateRE.FindStringSubmatchIndex(body); loc != nil {
		due = &Token{
			Type:  TokenDueDate,
			Match: body[loc[0]:],
			Text:  body[loc[2]:loc[3]],
		}
		body = body[:loc[0]]
	}

	if body != "" {
		it.Tokens = append(it.Tokens, Token{Type: TokenText, Match: body, Text: body})
	}
	if due != nil {
		it.Tokens = append(it.Tokens, *due)
		// A token whose text is not a calendar date is still recorded so
		// the raw substring survives round trips; only the decoded date
		// is treated as absent.
		if d, err := dateutil.ParseISO(due.Text); err == nil {
			d = dateutil.Truncate(d)
			it.Due = &d
		}
	}
	return it
}
