// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package linefield

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/condio/datline/internal/container"
	"github.com/condio/datline/internal/exc"
)

// SwitchChoice is one branch of a SwitchComponent: a selector key, the label
// that selects it on the input line, and the ordered sub-fields parsed after
// the selector.
type SwitchChoice struct {
	Key        int
	Label      string
	Components []Component
}

// SwitchComponent first reads an enumerated selector through an embedded
// integer selection, storing the chosen key under its own name, then reads
// the chosen branch's sub-fields in order against the same cursor and
// container. Once a key is chosen parsing commits to that branch; a failing
// sub-field fails the whole record.
type SwitchComponent struct {
	base
	defaultKey int
	choices    []SwitchChoice
	selector   *SelectionComponent
}

// NewSwitch builds a switch over choices, which are kept in declaration
// order. The default key must be one of the choice keys and keys must be
// unique.
func NewSwitch(name string, defaultKey int, choices []SwitchChoice) (*SwitchComponent, error) {
	loc := exc.Location{Field: name}
	labels := make([]string, 0, len(choices))
	keys := make([]int, 0, len(choices))
	defaultLabel := ""
	seen := map[int]bool{}
	for _, choice := range choices {
		if seen[choice.Key] {
			return nil, exc.Newf(loc, exc.CodeInvalidConfiguration,
				"duplicate switch key %d", choice.Key)
		}
		seen[choice.Key] = true
		labels = append(labels, choice.Label)
		keys = append(keys, choice.Key)
		if choice.Key == defaultKey {
			defaultLabel = choice.Label
		}
	}
	if defaultLabel == "" {
		return nil, exc.Newf(loc, exc.CodeInvalidConfiguration,
			"default key %d is not among the switch keys", defaultKey)
	}
	selector, err := NewIntSelection(name, defaultLabel, labels, keys)
	if err != nil {
		return nil, err
	}
	return &SwitchComponent{
		base:       base{name: name},
		defaultKey: defaultKey,
		choices:    choices,
		selector:   selector,
	}, nil
}

func (s *SwitchComponent) Read(section string, cursor *Cursor, dst *container.Container) error {
	if err := s.selector.Read(section, cursor, dst); err != nil {
		return err
	}
	key, err := dst.Int(s.name)
	if err != nil {
		return err
	}
	choice := s.choice(key)
	if choice == nil {
		// Unreachable: the selector only ever stores keys from the choices.
		return exc.Newf(exc.Location{Section: section, Field: s.name},
			exc.CodeInternal, "switch selected unknown key %d", key)
	}
	for _, component := range choice.Components {
		if err := component.Read(section, cursor, dst); err != nil {
			return err
		}
	}
	return nil
}

// Choices returns the switch's branches in declaration order.
func (s *SwitchComponent) Choices() []SwitchChoice {
	return slices.Clone(s.choices)
}

func (s *SwitchComponent) choice(key int) *SwitchChoice {
	for i := range s.choices {
		if s.choices[i].Key == key {
			return &s.choices[i]
		}
	}
	return nil
}

func (s *SwitchComponent) DefaultLine(w io.Writer) {
	s.selector.DefaultLine(w)
	for _, component := range s.choice(s.defaultKey).Components {
		fmt.Fprint(w, " ")
		component.DefaultLine(w)
	}
}

func (s *SwitchComponent) DocToken() string {
	return s.selector.DocToken() + " [further parameters]"
}

// DocLines renders one grammar summary line per choice.
func (s *SwitchComponent) DocLines() []string {
	lines := make([]string, 0, len(s.choices))
	for _, choice := range s.choices {
		tokens := []string{choice.Label}
		for _, component := range choice.Components {
			tokens = append(tokens, component.DocToken())
		}
		lines = append(lines, strings.Join(tokens, " "))
	}
	return lines
}
