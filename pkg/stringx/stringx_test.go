package stringx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/headlinehq/headline/pkg/stringx"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "hello", expected: "Hello"},
		{input: "hello world", expected: "Hello world"},
		{input: "HELLO", expected: "Hello"},
		{input: "éclair", expected: "Éclair"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, stringx.Capitalize(tc.input))
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "data transfer object", expected: "dataTransferObject"},
		{input: "some-mixed_string", expected: "someMixedString"},
		{input: "  padded phrase ", expected: "paddedPhrase"},
		{input: "single", expected: "single"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, stringx.CamelCase(tc.input))
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, stringx.IsEmpty(""))
	assert.False(t, stringx.IsEmpty(" "))

	assert.True(t, stringx.IsBlank(""))
	assert.True(t, stringx.IsBlank(" \t\n"))
	assert.False(t, stringx.IsBlank(" x "))

	assert.Equal(t, "x", stringx.Trim(" x\t"))
	assert.Equal(t, "loud", stringx.LowerCase("LOUD"))
}
