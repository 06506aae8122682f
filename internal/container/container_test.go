// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainerAddAndGet(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Add("NUMSCAL", 3))
	require.NoError(t, c.Add("TIMESTEP", 0.5))
	require.NoError(t, c.Add("FILENAME", "fluid.dat"))
	require.NoError(t, c.Add("ADAPTIVE", true))
	require.NoError(t, c.Add("STOICHIOMETRIES", []int{1, -1, 0}))
	require.NoError(t, c.Add("COEFFS", []float64{0.5, 1.5}))

	n, err := c.Int("NUMSCAL")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	r, err := c.Real("TIMESTEP")
	require.NoError(t, err)
	require.Equal(t, 0.5, r)

	s, err := c.String("FILENAME")
	require.NoError(t, err)
	require.Equal(t, "fluid.dat", s)

	b, err := c.Bool("ADAPTIVE")
	require.NoError(t, err)
	require.True(t, b)

	is, err := c.Ints("STOICHIOMETRIES")
	require.NoError(t, err)
	require.Equal(t, []int{1, -1, 0}, is)

	rs, err := c.Reals("COEFFS")
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.5}, rs)

	require.Equal(t,
		[]string{"NUMSCAL", "TIMESTEP", "FILENAME", "ADAPTIVE", "STOICHIOMETRIES", "COEFFS"},
		c.Names())
}

func TestContainerWriteOnce(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Add("NUMSCAL", 3))
	require.Error(t, c.Add("NUMSCAL", 4))

	n, err := c.Int("NUMSCAL")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestContainerRejectsUnsupportedTypes(t *testing.T) {
	t.Parallel()

	c := New()
	require.Error(t, c.Add("BAD", struct{}{}))
	require.Error(t, c.Add("BAD", int64(1)))
}

func TestContainerTypeMismatch(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Add("NUMSCAL", 3))

	_, err := c.String("NUMSCAL")
	require.Error(t, err)
	require.Contains(t, err.Error(), "integer")

	_, err = c.Int("ABSENT")
	require.Error(t, err)
}
