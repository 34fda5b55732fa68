package title

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// wordToken matches one word of a lowercased clause: a letter run
	// that may contain internal apostrophes or periods (contractions,
	// abbreviations).
	wordToken = regexp.MustCompile(`\b[a-z][a-z'’.]*\b`)

	// abbrevFragment detects a letter-period-letter run, the signature
	// of abbreviations like "u.s." or "a.m.".
	abbrevFragment = regexp.MustCompile(`[a-z]\.[a-z]`)
)

// capitalizeClause produces the headline-cased form of one lowercased
// clause. Three passes run in a fixed order: capitalize every word
// token, re-lower minor words, then force-capitalize the clause's first
// and last word even when they are minor.
func (c *Caser) capitalizeClause(seg string) string {
	seg = wordToken.ReplaceAllStringFunc(seg, func(tok string) string {
		if abbrevFragment.MatchString(tok) {
			// Abbreviations render in their canonical all-caps form.
			return strings.ToUpper(tok)
		}
		return capitalizeWord(tok)
	})

	seg = c.lowerMinorWords(seg)

	// A clause consisting of a single minor word passes through both
	// edge overrides; the second application is a no-op.
	if m := c.blacklist.first.FindStringSubmatchIndex(seg); m != nil {
		word := seg[m[4]:m[5]]
		seg = seg[:m[4]] + capitalizeWord(word) + seg[m[5]:]
	}
	if m := c.blacklist.last.FindStringSubmatchIndex(seg); m != nil {
		word := seg[m[2]:m[3]]
		seg = seg[:m[2]] + capitalizeWord(word) + seg[m[3]:]
	}
	return seg
}

// lowerMinorWords re-lowers whole-word blacklist matches. Matches that
// sit inside an abbreviation fragment (the "A" in "A.M.", the "V" in
// "V.I.P.") are left alone: a period counts as a word boundary, so the
// word query alone would undo what the capitalization pass rendered.
func (c *Caser) lowerMinorWords(seg string) string {
	matches := c.blacklist.word.FindAllStringIndex(seg, -1)
	if matches == nil {
		return seg
	}

	var sb strings.Builder
	sb.Grow(len(seg))
	idx := 0
	for _, m := range matches {
		sb.WriteString(seg[idx:m[0]])
		word := seg[m[0]:m[1]]
		if inAbbrevFragment(seg, m[0], m[1]) {
			sb.WriteString(word)
		} else {
			sb.WriteString(strings.ToLower(word))
		}
		idx = m[1]
	}
	sb.WriteString(seg[idx:])
	return sb.String()
}

// inAbbrevFragment reports whether seg[start:end] adjoins a period that
// connects it to another letter, the same letter-period-letter window
// the capitalization pass uses to detect abbreviations.
func inAbbrevFragment(seg string, start, end int) bool {
	if end < len(seg)-1 && seg[end] == '.' && isASCIILetter(seg[end+1]) {
		return true
	}
	return start >= 2 && seg[start-1] == '.' && isASCIILetter(seg[start-2])
}

func isASCIILetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// capitalizeWord uppercases the first letter and lowercases the rest.
func capitalizeWord(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
