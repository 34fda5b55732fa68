package csvx_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlinehq/headline/pkg/csvx"
	"github.com/headlinehq/headline/pkg/title"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{name: "Bool true", input: "true", expected: true},
		{name: "Bool false", input: "false", expected: false},
		{name: "Integer", input: "42", expected: int64(42)},
		{name: "Negative integer", input: "-7", expected: int64(-7)},
		{name: "Float", input: "3.14", expected: 3.14},
		{name: "Padded integer", input: " 42 ", expected: int64(42)},
		{name: "Plain string", input: "moby dick", expected: "moby dick"},
		{name: "Almost a number", input: "42nd street", expected: "42nd street"},
		{name: "Empty field", input: "", expected: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, csvx.Coerce(tc.input))
		})
	}
}

func TestParseLine(t *testing.T) {
	// when
	got, err := csvx.ParseLine(`the title,42,true,3.14,"quoted, field"`)

	// then
	require.NoError(t, err)
	assert.Equal(t, []any{"the title", int64(42), true, 3.14, "quoted, field"}, got)
}

func TestParseLineError(t *testing.T) {
	_, err := csvx.ParseLine(`"unterminated`)
	assert.ErrorContains(t, err, "while splitting CSV record")
}

func TestRecords(t *testing.T) {
	in := strings.NewReader("title,year,in_print\nmoby dick,1851,true\nthe trial,1925,false\n")

	// when
	rows, err := csvx.Records(in)

	// then
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]any{"title": "moby dick", "year": int64(1851), "in_print": true}, rows[0])
	assert.Equal(t, map[string]any{"title": "the trial", "year": int64(1925), "in_print": false}, rows[1])
}

func TestTitleCaseValue(t *testing.T) {
	caser, err := title.NewCaser()
	require.NoError(t, err)

	got, err := csvx.TitleCaseValue("war and peace", caser)
	require.NoError(t, err)
	assert.Equal(t, "War and Peace", got)

	_, err = csvx.TitleCaseValue(int64(42), caser)
	assert.ErrorIs(t, err, csvx.ErrNotAString)
}

func TestTitleCaseColumn(t *testing.T) {
	caser, err := title.NewCaser()
	require.NoError(t, err)

	rows := []map[string]any{
		{"title": "war and peace", "year": int64(1869)},
		{"title": "a tale of two cities", "year": int64(1859)},
	}

	// when
	err = csvx.TitleCaseColumn(rows, "title", caser)

	// then
	require.NoError(t, err)
	assert.Equal(t, "War and Peace", rows[0]["title"])
	assert.Equal(t, "A Tale of Two Cities", rows[1]["title"])
	assert.Equal(t, int64(1869), rows[0]["year"])

	err = csvx.TitleCaseColumn(rows, "missing", caser)
	assert.ErrorIs(t, err, csvx.ErrUnknownColumn)
}

func TestTitleCaseStream(t *testing.T) {
	caser, err := title.NewCaser()
	require.NoError(t, err)

	in := strings.NewReader("title,year\nthe old man and the sea,1952\nat&t: a history,1983\n")
	var out bytes.Buffer

	// when
	err = csvx.TitleCaseStream(in, &out, "title", caser)

	// then
	require.NoError(t, err)
	expected := "title,year\nThe Old Man and the Sea,1952\nAT&T: A History,1983\n"
	assert.Equal(t, expected, out.String())
}

func TestTitleCaseStreamUnknownColumn(t *testing.T) {
	caser, err := title.NewCaser()
	require.NoError(t, err)

	in := strings.NewReader("title,year\nthe trial,1925\n")

	// when
	err = csvx.TitleCaseStream(in, &bytes.Buffer{}, "missing", caser)

	// then
	assert.ErrorIs(t, err, csvx.ErrUnknownColumn)
}
