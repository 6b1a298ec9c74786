package listedit

import "strings"

// Mode selects the direction of an Indent call.
type Mode string

const (
	ModeIndent  Mode = "indent"
	ModeOutdent Mode = "outdent"
)

// Indent returns a copy of lines shifted by one indent unit. Indenting
// prepends one tab to every line unconditionally; outdenting removes exactly
// one leading tab from lines that have one and leaves the rest unchanged.
func Indent(lines []string, mode Mode) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch mode {
		case ModeOutdent:
			out[i] = strings.TrimPrefix(line, "\t")
		default:
			out[i] = "\t" + line
		}
	}
	return out
}
