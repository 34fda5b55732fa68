// Package title converts arbitrary strings into English headline-style
// capitalization: major words are capitalized, configured minor words are
// lowered unless they open or close a clause, and a small set of
// typographic fixups (possessives, "v."/"vs.", known acronyms) is applied
// at the end.
package title

import "strings"

// Caser is a reusable title-casing engine. It is immutable after
// construction and safe for concurrent use.
type Caser struct {
	blacklist *Blacklist
}

// Option customizes a Caser.
type Option func(*options)

type options struct {
	blacklist *Blacklist
	words     []string
}

// WithBlacklist sets a pre-built minor-word matcher.
func WithBlacklist(b *Blacklist) Option {
	return func(o *options) {
		o.blacklist = b
	}
}

// WithWords builds the minor-word matcher from a plain word list.
func WithWords(words ...string) Option {
	return func(o *options) {
		o.words = words
	}
}

// NewCaser returns a Caser using the default minor-word set unless
// overridden via options.
func NewCaser(opts ...Option) (*Caser, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.blacklist != nil:
		return &Caser{blacklist: o.blacklist}, nil
	case o.words != nil:
		b, err := NewBlacklist(o.words...)
		if err != nil {
			return nil, err
		}
		return &Caser{blacklist: b}, nil
	default:
		return &Caser{blacklist: DefaultBlacklist()}, nil
	}
}

// Convert returns the headline-cased form of in. The input is never
// mutated; only letter case changes, so the punctuation and whitespace
// layout of the result matches the input exactly.
func (c *Caser) Convert(in string) string {
	clauses := splitClauses(strings.ToLower(in))

	var out strings.Builder
	out.Grow(len(in))
	for _, cl := range clauses {
		out.WriteString(c.capitalizeClause(cl.text))
		out.WriteString(cl.boundary)
	}

	return normalize(out.String())
}

// Convert is a shorthand for converting with the default minor-word set.
func Convert(in string) string {
	return defaultCaser.Convert(in)
}

var defaultCaser = &Caser{blacklist: DefaultBlacklist()}
