// Package heredoc renders indented raw string literals as
// here-documents for CLI help and example texts.
package heredoc

import (
	"strings"

	"github.com/MakeNowJust/heredoc"
)

// cliTag is the placeholder replaced by the binary name, so help texts
// stay correct if the binary is renamed.
const cliTag = "<cli>"

// WithCLIName returns raw unindented, with every <cli> tag replaced by
// the given name.
func WithCLIName(raw string, cliName string) string {
	return strings.ReplaceAll(heredoc.Doc(raw), cliTag, cliName)
}

// Docf returns raw unindented and formatted with args.
func Docf(raw string, args ...any) string {
	return heredoc.Docf(raw, args...)
}
