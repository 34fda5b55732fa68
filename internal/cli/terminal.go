package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsSmartTerminal returns true if the writer w is a terminal that can be
// expected to handle VT escape codes.
func IsSmartTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) {
		return false
	}

	// Explicitly dumb terminals are not smart.
	switch os.Getenv("TERM") {
	case "dumb", "st-256color":
		return false
	}
	return true
}
