// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package linefield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorExtractToken(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple tokens",
			input:    "NUMSCAL 3 STOICHIOMETRIES",
			expected: []string{"NUMSCAL", "3", "STOICHIOMETRIES"},
		},
		{
			name:     "extra whitespace",
			input:    "  a \t b  ",
			expected: []string{"a", "b", ""},
		},
		{
			name:     "empty line",
			input:    "",
			expected: []string{"", ""},
		},
		{
			name:     "negative numbers",
			input:    "1 -1 0",
			expected: []string{"1", "-1", "0"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cursor := NewCursor(tc.input)
			for _, want := range tc.expected {
				require.Equal(t, want, cursor.ExtractToken())
			}
		})
	}
}

func TestCursorExtractTokenIsTransactional(t *testing.T) {
	t.Parallel()

	cursor := NewCursor("first second")
	require.Equal(t, "first", cursor.ExtractToken())
	// The consumed token is gone from the text and the next read starts from
	// the same position.
	require.Equal(t, "second", cursor.ExtractToken())
	require.Equal(t, "", cursor.ExtractToken())
	require.False(t, cursor.Empty())
}

func TestCursorFindLabel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		label string
		found bool
	}{
		{
			name:  "label in the middle",
			input: "a STOICHIOMETRIES 1",
			label: "STOICHIOMETRIES",
			found: true,
		},
		{
			name:  "label at the start",
			input: "NUMSCAL 3",
			label: "NUMSCAL",
			found: true,
		},
		{
			name:  "label at the end",
			input: "3 NUMSCAL",
			label: "NUMSCAL",
			found: true,
		},
		{
			name:  "label embedded in a longer token",
			input: "NUMSCALE 3",
			label: "NUMSCAL",
			found: false,
		},
		{
			name:  "label as suffix of a longer token",
			input: "MYNUMSCAL 3",
			label: "NUMSCAL",
			found: false,
		},
		{
			name:  "absent label",
			input: "a b c",
			label: "NUMSCAL",
			found: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cursor := NewCursor(tc.input)
			require.Equal(t, tc.found, cursor.FindLabel(tc.label).IsPresent())
		})
	}
}

func TestCursorConsumeLabelAt(t *testing.T) {
	t.Parallel()

	cursor := NewCursor("THICKNESS 2.5 YOUNG 3")
	pos := cursor.FindLabel("YOUNG")
	require.True(t, pos.IsPresent())
	cursor.ConsumeLabelAt(pos.Value(), len("YOUNG"))
	// The label is removed and the next token is its value.
	require.Equal(t, "3", cursor.ExtractToken())
	require.False(t, cursor.FindLabel("YOUNG").IsPresent())
}

func TestCursorSkipToEnd(t *testing.T) {
	t.Parallel()

	cursor := NewCursor("leftover tokens")
	require.False(t, cursor.Empty())
	cursor.SkipToEnd()
	require.True(t, cursor.Empty())
	require.Equal(t, "", cursor.ExtractToken())
	require.Equal(t, "", cursor.Rest())
}
