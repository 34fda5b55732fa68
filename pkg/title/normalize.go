package title

import (
	"regexp"
	"strings"
)

var (
	// versusAbbrev undoes the clause-end override for " Vs. " / " V. ":
	// the versus abbreviation always renders lowercase.
	versusAbbrev = regexp.MustCompile(` V(s?)\. `)

	// possessiveS lowers the S of a possessive that was capitalized as
	// its own word token, for straight and typographic apostrophes.
	possessiveS = regexp.MustCompile(`(['’])S\b`)

	// knownAcronyms are rendered in their canonical all-caps form
	// wherever they appear.
	knownAcronyms = regexp.MustCompile(`(?i)\b(at&t|q&a)\b`)
)

// normalize applies the ordered whole-string fixups that run after the
// clauses are reassembled.
func normalize(s string) string {
	s = versusAbbrev.ReplaceAllString(s, " v$1. ")
	s = possessiveS.ReplaceAllString(s, "${1}s")
	return knownAcronyms.ReplaceAllStringFunc(s, strings.ToUpper)
}
