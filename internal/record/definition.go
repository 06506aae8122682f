// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package record defines named single-line records: a keyword followed by an
// ordered sequence of field components, parsed against one shared cursor and
// result container.
package record

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/condio/datline/internal/container"
	"github.com/condio/datline/internal/exc"
	"github.com/condio/datline/internal/linefield"
)

// Definition describes one record's grammar. Section is the enclosing
// section name, used only for diagnostics; Keyword is the leading token that
// identifies the record on an input line.
type Definition struct {
	section    string
	keyword    string
	components []linefield.Component
}

// New validates that component names are unique within the record (separators
// share a sentinel name and are exempt) and that every Derived vector length
// references a value-storing component declared earlier. Both checks recurse
// into switch branches; sibling branches may reuse a name, since only one of
// them ever reads, and names declared inside a branch are visible only within
// that branch (a dependency on a conditionally present field cannot be
// resolved eagerly).
func New(section string, keyword string, components ...linefield.Component) (*Definition, error) {
	if err := validateComponents(section, keyword, components, map[string]bool{}); err != nil {
		return nil, err
	}
	return &Definition{
		section:    section,
		keyword:    keyword,
		components: components,
	}, nil
}

func validateComponents(section string, keyword string, components []linefield.Component, declared map[string]bool) error {
	for _, component := range components {
		if v, ok := component.(interface{ Arity() linefield.Length }); ok {
			if ref, derived := linefield.DerivedReference(v.Arity()); derived && !declared[ref] {
				return exc.Newf(exc.Location{Section: section, Field: component.Name()},
					exc.CodeInvalidConfiguration,
					"vector %q derives its length from %q, which is not declared earlier in record %q",
					component.Name(), ref, keyword)
			}
		}
		name := component.Name()
		if name != linefield.SeparatorName {
			if declared[name] {
				return exc.Newf(exc.Location{Section: section, Field: name},
					exc.CodeInvalidConfiguration,
					"component %q declared twice in record %q", name, keyword)
			}
			declared[name] = true
		}
		if sw, ok := component.(*linefield.SwitchComponent); ok {
			for _, choice := range sw.Choices() {
				if err := validateComponents(section, keyword, choice.Components, maps.Clone(declared)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *Definition) Section() string {
	return d.section
}

func (d *Definition) Keyword() string {
	return d.keyword
}

// Parse reads one line's remainder after the keyword. The returned container
// holds every component's value; on failure the container is discarded and
// the first error is returned, aborting the record.
func (d *Definition) Parse(line string) (*container.Container, error) {
	cursor := linefield.NewCursor(line)
	dst := container.New()
	for _, component := range d.components {
		if err := component.Read(d.section, cursor, dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// ParseLines parses each line as an independent record, reporting failures to
// r. A fatal report stops parsing; otherwise the remaining lines are still
// validated. The result is index-aligned with lines, nil where a record
// failed.
func (d *Definition) ParseLines(lines []string, r exc.Reporter) []*container.Container {
	out := make([]*container.Container, len(lines))
	for i, line := range lines {
		parsed, err := d.Parse(line)
		if err != nil {
			e, ok := err.(exc.Exception)
			if !ok {
				e = exc.WrapUnknown(exc.Location{Section: d.section}, err)
			}
			if r.Report(e) != nil {
				return out
			}
			continue
		}
		out[i] = parsed
	}
	return out
}

// DefaultLine renders an example line that Parse accepts and that reproduces
// every component's default value, including the keyword.
func (d *Definition) DefaultLine() string {
	parts := []string{d.keyword}
	for _, component := range d.components {
		var b strings.Builder
		component.DefaultLine(&b)
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}
	return strings.Join(parts, " ")
}

// Describe writes the record's component descriptions, one per line, for
// components that have one.
func (d *Definition) Describe(w io.Writer) {
	fmt.Fprintf(w, "%s\n", d.section)
	for _, component := range d.components {
		var b strings.Builder
		component.Describe(&b)
		if b.Len() > 0 {
			fmt.Fprintf(w, "%s\n", b.String())
		}
	}
}

// DocLine renders the record's grammar summary: the keyword followed by each
// component's doc token.
func (d *Definition) DocLine() string {
	tokens := []string{d.keyword}
	for _, component := range d.components {
		if t := component.DocToken(); t != "" {
			tokens = append(tokens, t)
		}
	}
	return strings.Join(tokens, " ")
}

// DocTableRows returns the {label, optional, description} rows of the
// record's separators, feeding the generated documentation tables.
func (d *Definition) DocTableRows() [][]string {
	var rows [][]string
	for _, component := range d.components {
		if sep, ok := component.(*linefield.SeparatorComponent); ok {
			rows = append(rows, sep.TableRow())
		}
	}
	return rows
}
