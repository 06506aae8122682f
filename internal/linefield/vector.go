// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package linefield

import (
	"fmt"
	"io"
	"strings"

	"github.com/condio/datline/internal/container"
)

// IntVectorComponent reads a sequence of integers whose arity is resolved at
// read time. The stored sequence always has the resolved length; an optional
// vector that runs out of tokens keeps the default in the remaining slots.
type IntVectorComponent struct {
	base
	length       Length
	defaultValue int
}

func NewIntVector(name string, length Length, defaultValue int, optional bool) *IntVectorComponent {
	return &IntVectorComponent{
		base:         base{name: name, optional: optional},
		length:       length,
		defaultValue: defaultValue,
	}
}

func (c *IntVectorComponent) Read(section string, cursor *Cursor, dst *container.Container) error {
	n, err := c.length.Resolve(dst)
	if err != nil {
		return err
	}
	values := make([]int, n)
	for i := range values {
		values[i] = c.defaultValue
	}
	if !cursor.Empty() {
		for i := range values {
			token := cursor.ExtractToken()
			if c.optional && token == "" {
				break
			}
			values[i], err = parseIntToken(token, c.name, section, n)
			if err != nil {
				return err
			}
		}
	}
	return dst.Add(c.name, values)
}

// Arity returns the vector's length definition.
func (c *IntVectorComponent) Arity() Length {
	return c.length
}

func (c *IntVectorComponent) DefaultLine(w io.Writer) {
	defaults := make([]string, c.length.defaultLength())
	for i := range defaults {
		defaults[i] = fmt.Sprintf("%d", c.defaultValue)
	}
	fmt.Fprint(w, strings.Join(defaults, " "))
}

func (c *IntVectorComponent) DocToken() string {
	return "<int vec:" + c.name + ">"
}

// RealVectorComponent reads a sequence of reals whose arity is resolved at
// read time, with the same slot-filling rules as IntVectorComponent.
type RealVectorComponent struct {
	base
	length       Length
	defaultValue float64
}

func NewRealVector(name string, length Length, defaultValue float64, optional bool) *RealVectorComponent {
	return &RealVectorComponent{
		base:         base{name: name, optional: optional},
		length:       length,
		defaultValue: defaultValue,
	}
}

func (c *RealVectorComponent) Read(section string, cursor *Cursor, dst *container.Container) error {
	n, err := c.length.Resolve(dst)
	if err != nil {
		return err
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = c.defaultValue
	}
	if !cursor.Empty() {
		for i := range values {
			token := cursor.ExtractToken()
			if c.optional && token == "" {
				break
			}
			values[i], err = parseRealToken(token, c.name, section, n)
			if err != nil {
				return err
			}
		}
	}
	return dst.Add(c.name, values)
}

// Arity returns the vector's length definition.
func (c *RealVectorComponent) Arity() Length {
	return c.length
}

func (c *RealVectorComponent) DefaultLine(w io.Writer) {
	defaults := make([]string, c.length.defaultLength())
	for i := range defaults {
		defaults[i] = fmt.Sprintf("%g", c.defaultValue)
	}
	fmt.Fprint(w, strings.Join(defaults, " "))
}

func (c *RealVectorComponent) DocToken() string {
	return "<real vec:" + c.name + ">"
}
