// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package linefield

import (
	"github.com/condio/datline/internal/container"
	"github.com/condio/datline/internal/exc"
)

// Length is the arity of a vector component: either a fixed constant or a
// value derived from an integer field read earlier on the same line. It is
// re-evaluated on every Read, against the container built so far.
type Length interface {
	Resolve(c *container.Container) (int, error)

	// defaultLength is the arity used when rendering an example line, where
	// no container exists to derive from.
	defaultLength() int
}

type fixedLength int

// Fixed returns a constant Length.
func Fixed(n int) Length {
	return fixedLength(n)
}

func (l fixedLength) Resolve(*container.Container) (int, error) {
	return int(l), nil
}

func (l fixedLength) defaultLength() int {
	return int(l)
}

type derivedLength string

// Derived returns a Length read from the named integer field. The named field
// must be declared earlier in the same component sequence; resolving against
// a container that does not hold it yet is a grammar-authoring bug.
func Derived(field string) Length {
	return derivedLength(field)
}

func (l derivedLength) Resolve(c *container.Container) (int, error) {
	n, err := c.Int(string(l))
	if err != nil {
		return 0, exc.Wrap(exc.Location{Field: string(l)}, exc.CodeInvalidConfiguration, err)
	}
	return n, nil
}

func (l derivedLength) defaultLength() int {
	return 1
}

// DerivedReference returns the field name a Derived length reads, and false
// for fixed lengths.
func DerivedReference(l Length) (string, bool) {
	d, ok := l.(derivedLength)
	return string(d), ok
}
