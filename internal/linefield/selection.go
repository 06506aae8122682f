// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package linefield

import (
	"fmt"
	"io"
	"slices"

	"github.com/condio/datline/internal/container"
	"github.com/condio/datline/internal/exc"
)

// SelectionComponent scans the remaining text for the first of its accepted
// labels, in declaration order, and stores that label's payload (a string or
// an integer, never the raw label). When no label is present the default
// label's payload is stored and the cursor is left untouched.
//
// Declaration order is a fixed priority: the scan stops at the first declared
// label found anywhere in the line, even if a later-declared label appears
// earlier in the text. The surrounding-space convention is the only guard
// against one label matching inside an unrelated longer token.
type SelectionComponent struct {
	base
	defaultValue   string
	labels         []string
	stringPayloads []string
	intPayloads    []int
	stringToString bool
}

// NewStringSelection builds a selection whose payloads are strings, parallel
// to labels.
func NewStringSelection(name string, defaultValue string, labels []string, payloads []string) (*SelectionComponent, error) {
	if err := validateSelection(name, defaultValue, labels, len(payloads)); err != nil {
		return nil, err
	}
	return &SelectionComponent{
		base:           base{name: name},
		defaultValue:   defaultValue,
		labels:         labels,
		stringPayloads: payloads,
		stringToString: true,
	}, nil
}

// NewIntSelection builds a selection whose payloads are integers, parallel to
// labels.
func NewIntSelection(name string, defaultValue string, labels []string, payloads []int) (*SelectionComponent, error) {
	if err := validateSelection(name, defaultValue, labels, len(payloads)); err != nil {
		return nil, err
	}
	return &SelectionComponent{
		base:         base{name: name},
		defaultValue: defaultValue,
		labels:       labels,
		intPayloads:  payloads,
	}, nil
}

func validateSelection(name string, defaultValue string, labels []string, payloadCount int) error {
	loc := exc.Location{Field: name}
	if !slices.Contains(labels, defaultValue) {
		return exc.Newf(loc, exc.CodeInvalidConfiguration,
			"invalid default value %q: not among the accepted values", defaultValue)
	}
	if len(labels) != payloadCount {
		return exc.Newf(loc, exc.CodeInvalidConfiguration,
			"accepted values (%d) must match payload values (%d)", len(labels), payloadCount)
	}
	return nil
}

func (s *SelectionComponent) Read(section string, cursor *Cursor, dst *container.Container) error {
	selected := s.defaultValue
	for _, label := range s.labels {
		if pos := cursor.FindLabel(label); pos.IsPresent() {
			selected = label
			cursor.ConsumeLabelAt(pos.Value(), len(label))
			break
		}
	}
	idx := slices.Index(s.labels, selected)
	if idx < 0 {
		return exc.Newf(exc.Location{Section: section, Field: s.name},
			exc.CodeInternal, "selected value %q has no payload", selected)
	}
	if s.stringToString {
		return dst.Add(s.name, s.stringPayloads[idx])
	}
	return dst.Add(s.name, s.intPayloads[idx])
}

func (s *SelectionComponent) DefaultLine(w io.Writer) {
	fmt.Fprint(w, s.defaultValue)
}

func (s *SelectionComponent) DocToken() string {
	return "<" + s.name + ">"
}

// Options returns the accepted labels in declaration order.
func (s *SelectionComponent) Options() []string {
	return slices.Clone(s.labels)
}
