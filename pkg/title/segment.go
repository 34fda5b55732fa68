package title

import "regexp"

// clauseBoundary marks where one independently-capitalized clause ends
// and the next begins: sentence punctuation followed by a space, or an
// opening double quote preceded by a space or the start of the string.
var clauseBoundary = regexp.MustCompile(`[:.;?!] |(?: |^)["“]`)

// clause is one segment of the title together with the delimiter that
// follows it. The delimiter is copied into the output verbatim; the final
// clause has an empty boundary.
type clause struct {
	text     string
	boundary string
}

// splitClauses splits s into an ordered clause sequence. Concatenating
// all texts and boundaries reproduces s: there are no gaps or overlaps.
// A string without boundary matches yields a single clause.
func splitClauses(s string) []clause {
	matches := clauseBoundary.FindAllStringIndex(s, -1)

	clauses := make([]clause, 0, len(matches)+1)
	idx := 0
	for _, m := range matches {
		clauses = append(clauses, clause{text: s[idx:m[0]], boundary: s[m[0]:m[1]]})
		idx = m[1]
	}
	return append(clauses, clause{text: s[idx:]})
}
