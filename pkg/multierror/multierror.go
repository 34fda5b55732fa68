// Package multierror aggregates validation errors into a single,
// bullet-listed error value.
package multierror

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// New creates a new *multierror.Error with a compact list format.
func New() *multierror.Error {
	return &multierror.Error{
		ErrorFormat: listFormatFunc,
	}
}

// Append is a wrapper for the multierror.Append function.
func Append(err error, errs ...error) *multierror.Error {
	return multierror.Append(err, errs...)
}

// listFormatFunc renders the number of collected errors followed by a
// bullet point list, without trailing blank lines.
func listFormatFunc(es []error) string {
	points := make([]string, len(es))
	for i, err := range es {
		points[i] = fmt.Sprintf("* %s", err)
	}
	if len(es) == 1 {
		return fmt.Sprintf("1 error occurred:\n\t%s", points[0])
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(es), strings.Join(points, "\n\t"))
}
