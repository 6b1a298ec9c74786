package listedit_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/eykd/taskmark-go/internal/listedit"
)

// TestContinue_UnorderedMarker tests the basic dash-list continuation.
func TestContinue_UnorderedMarker(t *testing.T) {
	line := "- buy milk"
	res := listedit.Continue(line, listedit.DefaultRules(), len(line))
	if res.Outcome != listedit.Continued {
		t.Fatalf("Outcome = %v, want Continued", res.Outcome)
	}
	if res.Current != "- buy milk" {
		t.Errorf("Current = %q", res.Current)
	}
	if res.Next != "- " {
		t.Errorf("Next = %q, want %q", res.Next, "- ")
	}
}

// TestContinue_NumberedMarkerIncrements tests that numbered continuations
// parse and increment the integer.
func TestContinue_NumberedMarkerIncrements(t *testing.T) {
	line := "\t1. first"
	res := listedit.Continue(line, listedit.DefaultRules(), len(line))
	if res.Outcome != listedit.Continued {
		t.Fatalf("Outcome = %v, want Continued", res.Outcome)
	}
	if !strings.HasPrefix(res.Next, "2. ") {
		t.Errorf("Next = %q, want prefix %q", res.Next, "2. ")
	}
}

// TestContinue_TaskMarkerStartsFreshIncomplete tests that any task status
// continues as an incomplete task with indentation preserved.
func TestContinue_TaskMarkerStartsFreshIncomplete(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"[x] done thing", "[ ] "},
		{"[!] urgent thing", "[ ] "},
		{"\t[/] nested busy thing", "\t[ ] "},
	}
	for _, c := range cases {
		res := listedit.Continue(c.line, listedit.DefaultRules(), len(c.line))
		if res.Outcome != listedit.Continued {
			t.Fatalf("Continue(%q).Outcome = %v, want Continued", c.line, res.Outcome)
		}
		if res.Next != c.want {
			t.Errorf("Continue(%q).Next = %q, want %q", c.line, res.Next, c.want)
		}
	}
}

// TestContinue_CancelledMarkerContinuesUnchanged tests the "[-] " rule.
func TestContinue_CancelledMarkerContinuesUnchanged(t *testing.T) {
	line := "\t[-] wontfix"
	res := listedit.Continue(line, listedit.DefaultRules(), len(line))
	if res.Next != "\t[-] " {
		t.Errorf("Next = %q, want %q", res.Next, "\t[-] ")
	}
}

// TestContinue_BareIndentation tests that tabs without a marker continue as
// the same indentation, and that indented marker lines are not captured by
// the bare-indentation rule.
func TestContinue_BareIndentation(t *testing.T) {
	line := "\t\tjust an indented note"
	res := listedit.Continue(line, listedit.DefaultRules(), len(line))
	if res.Outcome != listedit.Continued {
		t.Fatalf("Outcome = %v, want Continued", res.Outcome)
	}
	if res.Next != "\t\t" {
		t.Errorf("Next = %q, want two tabs", res.Next)
	}

	res = listedit.Continue("\t- marker wins", listedit.DefaultRules(), 14)
	if res.Next != "\t- " {
		t.Errorf("Next = %q, want %q", res.Next, "\t- ")
	}
}

// TestContinue_CursorMidLine tests the split: text after the cursor moves to
// the new line behind the continuation marker.
func TestContinue_CursorMidLine(t *testing.T) {
	line := "- buy milk"
	res := listedit.Continue(line, listedit.DefaultRules(), 5)
	if res.Current != "- buy" {
		t.Errorf("Current = %q, want %q", res.Current, "- buy")
	}
	if res.Next != "-  milk" {
		t.Errorf("Next = %q, want %q", res.Next, "-  milk")
	}
}

// TestContinue_EmptyItemEndsList tests the termination case: enter on a line
// that is nothing but its marker clears both halves.
func TestContinue_EmptyItemEndsList(t *testing.T) {
	res := listedit.Continue("[ ] ", listedit.DefaultRules(), 4)
	if res.Outcome != listedit.Ended {
		t.Fatalf("Outcome = %v, want Ended", res.Outcome)
	}
	if res.Current != "" || res.Next != "" {
		t.Errorf("Current, Next = %q, %q, want both empty", res.Current, res.Next)
	}
}

// TestContinue_MarkerOnlyLineWithCursorInside is the counter-case: the same
// marker-only line does not end the list when the cursor is not at the end.
func TestContinue_MarkerOnlyLineWithCursorInside(t *testing.T) {
	res := listedit.Continue("- ", listedit.DefaultRules(), 1)
	if res.Outcome != listedit.Continued {
		t.Errorf("Outcome = %v, want Continued", res.Outcome)
	}
}

// TestContinue_NoMatch tests that unrecognized lines split without a marker.
func TestContinue_NoMatch(t *testing.T) {
	res := listedit.Continue("plain prose", listedit.DefaultRules(), 5)
	if res.Outcome != listedit.NoMatch {
		t.Fatalf("Outcome = %v, want NoMatch", res.Outcome)
	}
	if res.Current != "plain" || res.Next != " prose" {
		t.Errorf("split = %q, %q", res.Current, res.Next)
	}
}

// TestContinue_FirstRuleWins tests that caller-supplied rules take the
// precedence their position gives them.
func TestContinue_FirstRuleWins(t *testing.T) {
	quote := listedit.Rule{Pattern: regexp.MustCompile(`^> `)}
	rules := append([]listedit.Rule{quote}, listedit.DefaultRules()...)

	line := "> - not a dash list"
	res := listedit.Continue(line, rules, len(line))
	if res.Next != "> " {
		t.Errorf("Next = %q, want %q", res.Next, "> ")
	}
}
