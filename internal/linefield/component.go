// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package linefield

import (
	"fmt"
	"io"
	"strings"

	"github.com/condio/datline/internal/container"
	"github.com/condio/datline/internal/exc"
)

// SeparatorName is the sentinel name shared by all separator components;
// separators reposition the cursor and never store a value.
const SeparatorName = "*SEPARATOR*"

// Component is one typed, named unit of a record's grammar. Read consumes
// tokens from the shared cursor and appends the parsed value to the shared
// container; the remaining methods are pure formatting for documentation and
// template generation.
//
// Reads within one record are strictly sequential: each Read mutates the
// cursor and container the next component depends on.
type Component interface {
	Name() string
	Optional() bool
	Read(section string, cursor *Cursor, dst *container.Container) error

	// DefaultLine writes example text that Read would accept, yielding the
	// component's default value.
	DefaultLine(w io.Writer)
	// Describe writes a human-readable description line, if the component
	// has one.
	Describe(w io.Writer)
	// DocToken returns the component's placeholder in a generated grammar
	// summary line.
	DocToken() string
}

type base struct {
	name     string
	optional bool
}

func (b base) Name() string {
	return b.name
}

func (b base) Optional() bool {
	return b.optional
}

func (b base) Describe(io.Writer) {}

// SeparatorComponent matches a literal label anywhere in the remaining text
// and repositions the cursor just after it, so the following components read
// the values associated with that label.
type SeparatorComponent struct {
	base
	label       string
	description string
}

func NewSeparator(label string, description string, optional bool) *SeparatorComponent {
	return &SeparatorComponent{
		base:        base{name: SeparatorName, optional: optional},
		label:       label,
		description: description,
	}
}

func (s *SeparatorComponent) Read(section string, cursor *Cursor, _ *container.Container) error {
	pos := cursor.FindLabel(s.label)
	if !pos.IsPresent() {
		if s.optional {
			cursor.SkipToEnd()
			return nil
		}
		return exc.Newf(exc.Location{Section: section, Field: s.label},
			exc.CodeRequiredParameterMissing,
			"required parameter %q for section %q not specified in input", s.label, section)
	}
	cursor.ConsumeLabelAt(pos.Value(), len(s.label))
	return nil
}

func (s *SeparatorComponent) DefaultLine(w io.Writer) {
	fmt.Fprint(w, s.label)
}

func (s *SeparatorComponent) Describe(w io.Writer) {
	marker := ""
	if s.optional {
		marker = "(optional)"
	}
	fmt.Fprintf(w, "    %-15s%-15s%s", s.label, marker, s.description)
}

func (s *SeparatorComponent) DocToken() string {
	return s.label
}

// TableRow returns the {label, optionality, description} row used by the
// generated documentation tables.
func (s *SeparatorComponent) TableRow() []string {
	marker := ""
	if s.optional {
		marker = "yes"
	}
	return []string{s.label, marker, s.description}
}

// StringComponent reads one token as a string value, storing its default when
// the cursor has nothing left.
type StringComponent struct {
	base
	defaultValue string
}

func NewString(name string, defaultValue string, optional bool) *StringComponent {
	return &StringComponent{
		base:         base{name: name, optional: optional},
		defaultValue: defaultValue,
	}
}

func (s *StringComponent) Read(section string, cursor *Cursor, dst *container.Container) error {
	value := s.defaultValue
	if !cursor.Empty() {
		value = cursor.ExtractToken()
		if value == "" {
			return exc.Newf(exc.Location{Section: section, Field: s.name},
				exc.CodeEmptyValue,
				"value of parameter %q for section %q not properly specified in input",
				s.name, section)
		}
	}
	return dst.Add(s.name, value)
}

func (s *StringComponent) DefaultLine(w io.Writer) {
	fmt.Fprint(w, s.defaultValue)
}

func (s *StringComponent) DocToken() string {
	return "<" + s.name + ">"
}

// IntComponent reads one integer token, storing its default when the cursor
// has nothing left, or when it is optional and the next token is empty.
type IntComponent struct {
	base
	defaultValue int
}

func NewInt(name string, defaultValue int, optional bool) *IntComponent {
	return &IntComponent{
		base:         base{name: name, optional: optional},
		defaultValue: defaultValue,
	}
}

func (c *IntComponent) Read(section string, cursor *Cursor, dst *container.Container) error {
	value := c.defaultValue
	if !cursor.Empty() {
		token := cursor.ExtractToken()
		if !c.optional || token != "" {
			var err error
			value, err = parseIntToken(token, c.name, section, 1)
			if err != nil {
				return err
			}
		}
	}
	return dst.Add(c.name, value)
}

func (c *IntComponent) DefaultLine(w io.Writer) {
	fmt.Fprintf(w, "%d", c.defaultValue)
}

func (c *IntComponent) DocToken() string {
	return fmt.Sprintf("%d", c.defaultValue)
}

// RealComponent reads one floating point token, storing its default when the
// cursor has nothing left, or when it is optional and the next token is empty.
type RealComponent struct {
	base
	defaultValue float64
}

func NewReal(name string, defaultValue float64, optional bool) *RealComponent {
	return &RealComponent{
		base:         base{name: name, optional: optional},
		defaultValue: defaultValue,
	}
}

func (c *RealComponent) Read(section string, cursor *Cursor, dst *container.Container) error {
	value := c.defaultValue
	if !cursor.Empty() {
		token := cursor.ExtractToken()
		if !c.optional || token != "" {
			var err error
			value, err = parseRealToken(token, c.name, section, 1)
			if err != nil {
				return err
			}
		}
	}
	return dst.Add(c.name, value)
}

func (c *RealComponent) DefaultLine(w io.Writer) {
	fmt.Fprintf(w, "%g", c.defaultValue)
}

func (c *RealComponent) DocToken() string {
	return fmt.Sprintf("%g", c.defaultValue)
}

// BoolComponent reads one yes/no token. Literals match case-insensitively
// against {Yes, True} and {No, False}; anything else is an error.
type BoolComponent struct {
	base
	defaultValue bool
}

const (
	lineTrue  = "Yes"
	lineFalse = "No"
)

func NewBool(name string, defaultValue bool, optional bool) *BoolComponent {
	return &BoolComponent{
		base:         base{name: name, optional: optional},
		defaultValue: defaultValue,
	}
}

func (c *BoolComponent) Read(section string, cursor *Cursor, dst *container.Container) error {
	value := c.defaultValue
	if !cursor.Empty() {
		token := cursor.ExtractToken()
		switch {
		case token == "" && c.optional:
		case token == "":
			return exc.Newf(exc.Location{Section: section, Field: c.name},
				exc.CodeMissingValue,
				"no value of variable %q in %q specified; the variable expects 1 input value(s)",
				c.name, section)
		case strings.EqualFold(token, "yes") || strings.EqualFold(token, "true"):
			value = true
		case strings.EqualFold(token, "no") || strings.EqualFold(token, "false"):
			value = false
		default:
			return exc.Newf(exc.Location{Section: section, Field: c.name, Token: token},
				exc.CodeInvalidBooleanLiteral,
				"value of parameter %q for section %q not properly specified in input",
				c.name, section)
		}
	}
	return dst.Add(c.name, value)
}

func (c *BoolComponent) DefaultLine(w io.Writer) {
	fmt.Fprint(w, yesNo(c.defaultValue))
}

func (c *BoolComponent) DocToken() string {
	return yesNo(c.defaultValue)
}

func yesNo(v bool) string {
	if v {
		return lineTrue
	}
	return lineFalse
}

// InsertFunc interprets a raw token and stores the result; it is the escape
// hatch for field kinds not covered by the closed component set.
type InsertFunc func(token string, dst *container.Container) error

// ProcessedComponent reads one token and hands it to a caller-supplied
// insertion function.
type ProcessedComponent struct {
	base
	insert InsertFunc
}

func NewProcessed(name string, insert InsertFunc, optional bool) *ProcessedComponent {
	return &ProcessedComponent{
		base:   base{name: name, optional: optional},
		insert: insert,
	}
}

func (c *ProcessedComponent) Read(section string, cursor *Cursor, dst *container.Container) error {
	if cursor.Empty() {
		return nil
	}
	token := cursor.ExtractToken()
	if token == "" {
		return exc.Newf(exc.Location{Section: section, Field: c.name},
			exc.CodeEmptyValue,
			"value of parameter %q for section %q not properly specified in input",
			c.name, section)
	}
	return c.insert(token, dst)
}

func (c *ProcessedComponent) DefaultLine(w io.Writer) {
	fmt.Fprint(w, "none")
}

func (c *ProcessedComponent) DocToken() string {
	return "<" + c.name + ">"
}
