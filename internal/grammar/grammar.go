// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package grammar compiles declarative YAML record grammars into record
// definitions. Every construction-time validation is surfaced at load, so a
// broken grammar file fails before any input line is parsed.
package grammar

import (
	"gopkg.in/yaml.v3"

	"github.com/condio/datline/internal/exc"
	"github.com/condio/datline/internal/linefield"
	"github.com/condio/datline/internal/record"
)

type file struct {
	Records []recordSpec `yaml:"records"`
}

type recordSpec struct {
	Section string      `yaml:"section"`
	Keyword string      `yaml:"keyword"`
	Fields  []fieldSpec `yaml:"fields"`
}

type fieldSpec struct {
	Kind        string       `yaml:"kind"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Optional    bool         `yaml:"optional"`
	Default     yaml.Node    `yaml:"default"`
	Options     []string     `yaml:"options"`
	Values      yaml.Node    `yaml:"values"`
	Length      yaml.Node    `yaml:"length"`
	DefaultKey  int          `yaml:"default_key"`
	Choices     []choiceSpec `yaml:"choices"`
	Func        string       `yaml:"func"`
}

type choiceSpec struct {
	Key    int         `yaml:"key"`
	Label  string      `yaml:"label"`
	Fields []fieldSpec `yaml:"fields"`
}

// Option configures grammar compilation.
type Option func(*compiler)

// OptionWithInsertFunc registers an insertion function that `kind: processed`
// fields can reference by name through their `func` attribute.
func OptionWithInsertFunc(name string, fn linefield.InsertFunc) Option {
	return func(c *compiler) {
		c.inserts[name] = fn
	}
}

type compiler struct {
	inserts map[string]linefield.InsertFunc
}

// Parse compiles a YAML grammar document into record definitions.
func Parse(data []byte, opts ...Option) ([]*record.Definition, error) {
	c := &compiler{inserts: map[string]linefield.InsertFunc{}}
	for _, opt := range opts {
		opt(c)
	}

	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, exc.Wrap(exc.Location{}, exc.CodeInvalidConfiguration, err)
	}
	if len(doc.Records) == 0 {
		return nil, exc.New(exc.Location{}, exc.CodeInvalidConfiguration,
			"grammar file declares no records")
	}

	definitions := make([]*record.Definition, 0, len(doc.Records))
	for _, spec := range doc.Records {
		def, err := c.compileRecord(spec)
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, def)
	}
	return definitions, nil
}

func (c *compiler) compileRecord(spec recordSpec) (*record.Definition, error) {
	loc := exc.Location{Section: spec.Section}
	if spec.Keyword == "" {
		return nil, exc.Newf(loc, exc.CodeInvalidConfiguration,
			"record in section %q has no keyword", spec.Section)
	}
	components, err := c.compileFields(spec.Section, spec.Fields)
	if err != nil {
		return nil, err
	}
	return record.New(spec.Section, spec.Keyword, components...)
}

func (c *compiler) compileFields(section string, specs []fieldSpec) ([]linefield.Component, error) {
	components := make([]linefield.Component, 0, len(specs))
	for _, spec := range specs {
		component, err := c.compileField(section, spec)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return components, nil
}

func (c *compiler) compileField(section string, spec fieldSpec) (linefield.Component, error) {
	loc := exc.Location{Section: section, Field: spec.Name}
	switch spec.Kind {
	case "separator":
		return linefield.NewSeparator(spec.Name, spec.Description, spec.Optional), nil
	case "string":
		value, err := decodeDefault(loc, spec.Default, "")
		if err != nil {
			return nil, err
		}
		return linefield.NewString(spec.Name, value, spec.Optional), nil
	case "int":
		value, err := decodeDefault(loc, spec.Default, 0)
		if err != nil {
			return nil, err
		}
		return linefield.NewInt(spec.Name, value, spec.Optional), nil
	case "real":
		value, err := decodeDefault(loc, spec.Default, 0.0)
		if err != nil {
			return nil, err
		}
		return linefield.NewReal(spec.Name, value, spec.Optional), nil
	case "bool":
		value, err := decodeDefault(loc, spec.Default, false)
		if err != nil {
			return nil, err
		}
		return linefield.NewBool(spec.Name, value, spec.Optional), nil
	case "intvector":
		value, err := decodeDefault(loc, spec.Default, 0)
		if err != nil {
			return nil, err
		}
		length, err := decodeLength(loc, spec.Length)
		if err != nil {
			return nil, err
		}
		return linefield.NewIntVector(spec.Name, length, value, spec.Optional), nil
	case "realvector":
		value, err := decodeDefault(loc, spec.Default, 0.0)
		if err != nil {
			return nil, err
		}
		length, err := decodeLength(loc, spec.Length)
		if err != nil {
			return nil, err
		}
		return linefield.NewRealVector(spec.Name, length, value, spec.Optional), nil
	case "selection":
		return c.compileSelection(loc, spec)
	case "switch":
		return c.compileSwitch(section, loc, spec)
	case "processed":
		fn, ok := c.inserts[spec.Func]
		if !ok {
			return nil, exc.Newf(loc, exc.CodeInvalidConfiguration,
				"processed field %q references unregistered func %q", spec.Name, spec.Func)
		}
		return linefield.NewProcessed(spec.Name, fn, spec.Optional), nil
	case "":
		return nil, exc.Newf(loc, exc.CodeInvalidConfiguration,
			"field %q has no kind", spec.Name)
	}
	return nil, exc.Newf(loc, exc.CodeInvalidConfiguration,
		"field %q has unknown kind %q", spec.Name, spec.Kind)
}

func (c *compiler) compileSelection(loc exc.Location, spec fieldSpec) (linefield.Component, error) {
	defaultValue, err := decodeDefault(loc, spec.Default, "")
	if err != nil {
		return nil, err
	}
	if spec.Values.IsZero() {
		// No payloads declared: each label is its own payload.
		return linefield.NewStringSelection(spec.Name, defaultValue, spec.Options, spec.Options)
	}
	var ints []int
	if err := spec.Values.Decode(&ints); err == nil {
		return linefield.NewIntSelection(spec.Name, defaultValue, spec.Options, ints)
	}
	var strs []string
	if err := spec.Values.Decode(&strs); err != nil {
		return nil, exc.Wrap(loc, exc.CodeInvalidConfiguration, err)
	}
	return linefield.NewStringSelection(spec.Name, defaultValue, spec.Options, strs)
}

func (c *compiler) compileSwitch(section string, loc exc.Location, spec fieldSpec) (linefield.Component, error) {
	choices := make([]linefield.SwitchChoice, 0, len(spec.Choices))
	for _, choice := range spec.Choices {
		components, err := c.compileFields(section, choice.Fields)
		if err != nil {
			return nil, err
		}
		choices = append(choices, linefield.SwitchChoice{
			Key:        choice.Key,
			Label:      choice.Label,
			Components: components,
		})
	}
	return linefield.NewSwitch(spec.Name, spec.DefaultKey, choices)
}

func decodeLength(loc exc.Location, node yaml.Node) (linefield.Length, error) {
	if node.IsZero() {
		return nil, exc.Newf(loc, exc.CodeInvalidConfiguration,
			"vector field %q has no length", loc.Field)
	}
	var n int
	if err := node.Decode(&n); err == nil {
		return linefield.Fixed(n), nil
	}
	var field string
	if err := node.Decode(&field); err != nil {
		return nil, exc.Wrap(loc, exc.CodeInvalidConfiguration, err)
	}
	return linefield.Derived(field), nil
}

func decodeDefault[T any](loc exc.Location, node yaml.Node, fallback T) (T, error) {
	if node.IsZero() {
		return fallback, nil
	}
	var value T
	if err := node.Decode(&value); err != nil {
		return fallback, exc.Wrap(loc, exc.CodeInvalidConfiguration, err)
	}
	return value, nil
}
