// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package linefield

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/condio/datline/internal/container"
	"github.com/condio/datline/internal/exc"
)

func TestSelectionConstruction(t *testing.T) {
	t.Parallel()

	t.Run("default must be among the accepted values", func(t *testing.T) {
		t.Parallel()
		_, err := NewIntSelection("COUPALGO", "bogus", []string{"a", "b"}, []int{1, 2})
		requireCode(t, err, exc.CodeInvalidConfiguration)
	})

	t.Run("labels and payloads must be parallel", func(t *testing.T) {
		t.Parallel()
		_, err := NewIntSelection("COUPALGO", "a", []string{"a", "b"}, []int{1})
		requireCode(t, err, exc.CodeInvalidConfiguration)
		_, err = NewStringSelection("COUPALGO", "a", []string{"a"}, []string{"x", "y"})
		requireCode(t, err, exc.CodeInvalidConfiguration)
	})
}

func TestSelectionRead(t *testing.T) {
	t.Parallel()

	newSelection := func(t *testing.T) *SelectionComponent {
		t.Helper()
		s, err := NewIntSelection("KINETIC_MODEL", "ConstantPermeability",
			[]string{"ConstantPermeability", "Butler-Volmer", "Butler-VolmerReduced"},
			[]int{1, 2, 3})
		require.NoError(t, err)
		return s
	}

	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "label at the start", input: "Butler-Volmer 0.5", expected: 2},
		{name: "label at the end", input: "0.5 Butler-VolmerReduced", expected: 3},
		{name: "label in the middle", input: "a ConstantPermeability b", expected: 1},
		{name: "absent label selects the default", input: "1 2 3", expected: 1},
		{name: "empty line selects the default", input: "", expected: 1},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cursor := NewCursor(tc.input)
			dst := container.New()
			require.NoError(t, newSelection(t).Read(testSection, cursor, dst))
			value, err := dst.Int("KINETIC_MODEL")
			require.NoError(t, err)
			require.Equal(t, tc.expected, value)
		})
	}
}

func TestSelectionConsumesTheLabel(t *testing.T) {
	t.Parallel()

	s, err := NewStringSelection("COUPLING", "matching",
		[]string{"matching", "nonmatching"},
		[]string{"volume_match", "volume_nonmatch"})
	require.NoError(t, err)

	cursor := NewCursor("nonmatching 7")
	dst := container.New()
	require.NoError(t, s.Read(testSection, cursor, dst))
	value, err := dst.String("COUPLING")
	require.NoError(t, err)
	require.Equal(t, "volume_nonmatch", value)
	// The label is gone and the cursor sits before the following token.
	require.Equal(t, "7", cursor.ExtractToken())
}

// Declaration order is a fixed priority: the first declared label found
// anywhere in the line wins, even when a later-declared label appears earlier
// in the text. Known limitation of the format, kept on purpose.
func TestSelectionDeclarationOrderWins(t *testing.T) {
	t.Parallel()

	s, err := NewIntSelection("MODEL", "quadratic",
		[]string{"quadratic", "linear"}, []int{2, 1})
	require.NoError(t, err)

	cursor := NewCursor("linear quadratic")
	dst := container.New()
	require.NoError(t, s.Read(testSection, cursor, dst))
	value, err := dst.Int("MODEL")
	require.NoError(t, err)
	require.Equal(t, 2, value)
}

// A selection scans the whole remaining line, so a token that is meant as
// another field's value can be stolen when it matches an accepted label.
// Also a known limitation; the surrounding-space convention is the only guard.
func TestSelectionLabelSubstringHazard(t *testing.T) {
	t.Parallel()

	s, err := NewStringSelection("SOLVER", "direct",
		[]string{"direct", "none"}, []string{"direct", "none"})
	require.NoError(t, err)

	// "none" here is positioned as a value for a later field, but the
	// selection grabs it anyway.
	cursor := NewCursor("5 none")
	dst := container.New()
	require.NoError(t, s.Read(testSection, cursor, dst))
	value, err := dst.String("SOLVER")
	require.NoError(t, err)
	require.Equal(t, "none", value)
	require.False(t, cursor.FindLabel("none").IsPresent())
}

func TestSelectionOptions(t *testing.T) {
	t.Parallel()

	s, err := NewIntSelection("MODEL", "a", []string{"a", "b"}, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, s.Options())
}
