package page

import "strings"

// Stringify reconstructs a line from an item's fields and tokens. It is the
// structural inverse of Parse: for every item Parse produces,
// Stringify(item) == item.Raw byte-for-byte. Items assembled by hand with
// tokens that disagree with their fields are caller error and carry no
// losslessness guarantee.
func Stringify(it Item) string {
	// Notes carry no tokens; their only content is the raw line itself.
	if len(it.Tokens) == 0 {
		return it.Raw
	}

	var sb strings.Builder
	sb.WriteString(it.Indent())
	for _, tok := range it.Tokens {
		sb.WriteString(tok.Match)
	}
	return sb.String()
}
