// Package english renders word lists and plural forms for user-facing
// messages, and converts formatted lists back into word slices.
package english

import (
	"strings"

	"github.com/dustin/go-humanize/english"
)

// FormatList joins items into a prose list: "a, b and c".
func FormatList(items []string) string {
	return english.WordSeries(items, "and")
}

// FormatListOxford behaves like FormatList with an Oxford comma:
// "a, b, and c".
func FormatListOxford(items []string) string {
	return english.OxfordWordSeries(items, "and")
}

// Pluralize returns the singular or a naively derived plural of word,
// depending on quantity.
func Pluralize(quantity int, word string) string {
	return english.PluralWord(quantity, word, "")
}

// CountedPluralize renders quantity together with the pluralized word,
// e.g. "3 words".
func CountedPluralize(quantity int, word string) string {
	return english.Plural(quantity, word, "")
}

// WordsFromList splits a FormatList-style prose list back into its
// words, tolerating an Oxford comma. Useful for turning a formatted
// minor-word list into input for the title-casing blacklist.
func WordsFromList(list string) []string {
	var words []string
	for _, chunk := range strings.Split(list, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if head, tail, found := strings.Cut(chunk, " and "); found {
			for _, w := range []string{head, tail} {
				if w = strings.TrimSpace(w); w != "" {
					words = append(words, w)
				}
			}
			continue
		}
		words = append(words, strings.TrimPrefix(chunk, "and "))
	}
	return words
}
