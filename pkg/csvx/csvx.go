// Package csvx parses CSV input and coerces its fields into typed Go
// values, and bridges CSV columns to the title-casing engine.
package csvx

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/headlinehq/headline/pkg/title"
)

// ErrUnknownColumn is returned when a named column is absent from the
// input.
var ErrUnknownColumn = errors.New("unknown column")

// ErrNotAString is returned when a non-string value is passed to the
// strict title-casing helper.
var ErrNotAString = errors.New("value is not a string")

// Coerce interprets a raw CSV field as the most specific literal it
// spells: bool, int64, float64 or string.
func Coerce(field string) any {
	trimmed := strings.TrimSpace(field)
	switch trimmed {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return field
}

// ParseLine splits a single CSV record and coerces each field.
func ParseLine(line string) ([]any, error) {
	fields, err := csv.NewReader(strings.NewReader(line)).Read()
	if err != nil {
		return nil, errors.Wrap(err, "while splitting CSV record")
	}

	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, Coerce(f))
	}
	return out, nil
}

// Records reads header-keyed CSV rows and coerces every cell.
func Records(r io.Reader) ([]map[string]any, error) {
	maps, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, errors.Wrap(err, "while reading CSV records")
	}

	out := make([]map[string]any, 0, len(maps))
	for _, row := range maps {
		coerced := make(map[string]any, len(row))
		for k, v := range row {
			coerced[k] = Coerce(v)
		}
		out = append(out, coerced)
	}
	return out, nil
}

// TitleCaseValue runs v through the engine. Only string values are
// accepted; everything else is an ErrNotAString.
func TitleCaseValue(v any, caser *title.Caser) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrNotAString, "got %T", v)
	}
	return caser.Convert(s), nil
}

// TitleCaseColumn applies the engine to the named column of rows,
// in place. Cells whose coerced value is not a string are left
// untouched. A column absent from every row is an ErrUnknownColumn.
func TitleCaseColumn(rows []map[string]any, column string, caser *title.Caser) error {
	found := false
	for _, row := range rows {
		v, ok := row[column]
		if !ok {
			continue
		}
		found = true
		if s, ok := v.(string); ok {
			row[column] = caser.Convert(s)
		}
	}
	if !found && len(rows) > 0 {
		return errors.Wrapf(ErrUnknownColumn, "%q", column)
	}
	return nil
}

// TitleCaseStream rewrites the CSV read from r to w, title-casing the
// named column. Cells that spell a non-string literal (numbers,
// booleans) pass through unchanged. The header row is preserved as-is.
func TitleCaseStream(r io.Reader, w io.Writer, column string, caser *title.Caser) error {
	reader := csv.NewReader(r)
	writer := csv.NewWriter(w)

	header, err := reader.Read()
	if err != nil {
		return errors.Wrap(err, "while reading CSV header")
	}
	colIdx := -1
	for i, name := range header {
		if name == column {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return errors.Wrapf(ErrUnknownColumn, "%q", column)
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "while writing CSV header")
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "while reading CSV record")
		}
		if _, isString := Coerce(record[colIdx]).(string); isString {
			record[colIdx] = caser.Convert(record[colIdx])
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "while writing CSV record")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "while flushing CSV output")
}
