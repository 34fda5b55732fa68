package title

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/headlinehq/headline/pkg/multierror"
)

// ErrMalformedBlacklist is returned when a caller-supplied minor-word set
// cannot be compiled into a whole-word matcher.
var ErrMalformedBlacklist = errors.New("malformed blacklist")

// DefaultWords is the built-in minor-word set. The "v."/"vs." entries
// cover the legal-citation and versus abbreviations.
var DefaultWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "en", "for", "if",
	"in", "of", "on", "or", "the", "to", "v", "v.", "vs", "vs.",
}

// punctClass matches a single ASCII punctuation character. It is used to
// skip over punctuation that surrounds a clause's first or last word.
const punctClass = `[!"#$%&'()*+,./:;<=>?@[\\\]^_` + "`" + `{|}~-]`

// Blacklist answers the three minor-word questions the capitalizer asks:
// whether a standalone word is minor, whether a clause starts with a
// minor word (after optional punctuation), and whether it ends with one
// (before optional punctuation). Matching is case-insensitive and
// whole-word. A Blacklist is immutable and safe for concurrent use.
type Blacklist struct {
	word  *regexp.Regexp
	first *regexp.Regexp
	last  *regexp.Regexp
}

// NewBlacklist compiles an ordered word list into a Blacklist. Words are
// matched literally; an empty list or a word containing whitespace is
// rejected with an ErrMalformedBlacklist-wrapped error.
func NewBlacklist(words ...string) (*Blacklist, error) {
	if len(words) == 0 {
		return nil, errors.Wrap(ErrMalformedBlacklist, "word list is empty")
	}

	issues := multierror.New()
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		switch {
		case w == "":
			issues = multierror.Append(issues, errors.New("empty word"))
		case strings.ContainsAny(w, " \t\r\n"):
			issues = multierror.Append(issues, fmt.Errorf("word %q contains whitespace", w))
		default:
			quoted = append(quoted, regexp.QuoteMeta(w))
		}
	}
	if err := issues.ErrorOrNil(); err != nil {
		return nil, errors.Wrap(ErrMalformedBlacklist, err.Error())
	}

	return newBlacklistAlternation(strings.Join(quoted, "|"))
}

// NewBlacklistPattern builds a Blacklist from a pre-built word
// alternation such as "a|an|the|vs?\.?". The pattern must be a valid
// regular expression fragment.
func NewBlacklistPattern(alternation string) (*Blacklist, error) {
	if alternation == "" {
		return nil, errors.Wrap(ErrMalformedBlacklist, "alternation is empty")
	}
	return newBlacklistAlternation(alternation)
}

func newBlacklistAlternation(alt string) (*Blacklist, error) {
	word, err := regexp.Compile(`(?i)\b(` + alt + `)\b`)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedBlacklist, "compiling word query: %s", err)
	}
	first, err := regexp.Compile(`(?i)^(` + punctClass + `*)(` + alt + `)\b`)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedBlacklist, "compiling clause-start query: %s", err)
	}
	last, err := regexp.Compile(`(?i)\b(` + alt + `)(` + punctClass + `*)$`)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedBlacklist, "compiling clause-end query: %s", err)
	}
	return &Blacklist{word: word, first: first, last: last}, nil
}

// DefaultBlacklist returns the matcher for DefaultWords.
func DefaultBlacklist() *Blacklist {
	return defaultBlacklist
}

var defaultBlacklist = func() *Blacklist {
	b, err := NewBlacklist(DefaultWords...)
	if err != nil {
		panic(err)
	}
	return b
}()
