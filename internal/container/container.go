// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package container holds the typed key/value results of parsing one record.
package container

import (
	"fmt"

	"github.com/condio/datline/internal/exc"
)

// Container is an append-only associative store from field name to a typed
// value. Entries are written exactly once per record; a second Add under an
// existing key is a grammar-authoring bug, not a user-input error.
//
// A Container must not be shared between records parsed concurrently; each
// record owns its own.
type Container struct {
	entries map[string]any
	order   []string
}

func New() *Container {
	return &Container{entries: map[string]any{}}
}

// Add stores value under name. The value must be one of int, float64, string,
// bool, []int, or []float64.
func (c *Container) Add(name string, value any) error {
	if _, ok := c.entries[name]; ok {
		return exc.Newf(exc.Location{Field: name}, exc.CodeInternal,
			"value %q written twice into one record", name)
	}
	switch value.(type) {
	case int, float64, string, bool, []int, []float64:
	default:
		return exc.Newf(exc.Location{Field: name}, exc.CodeInternal,
			"unsupported value type %T for %q", value, name)
	}
	c.entries[name] = value
	c.order = append(c.order, name)
	return nil
}

func (c *Container) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Names returns the stored field names in insertion order.
func (c *Container) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Value returns the raw stored value for name.
func (c *Container) Value(name string) (any, bool) {
	v, ok := c.entries[name]
	return v, ok
}

func (c *Container) Int(name string) (int, error) {
	return get[int](c, name, "integer")
}

func (c *Container) Real(name string) (float64, error) {
	return get[float64](c, name, "real")
}

func (c *Container) String(name string) (string, error) {
	return get[string](c, name, "string")
}

func (c *Container) Bool(name string) (bool, error) {
	return get[bool](c, name, "boolean")
}

func (c *Container) Ints(name string) ([]int, error) {
	return get[[]int](c, name, "integer vector")
}

func (c *Container) Reals(name string) ([]float64, error) {
	return get[[]float64](c, name, "real vector")
}

func get[T any](c *Container, name string, kind string) (T, error) {
	var zero T
	v, ok := c.entries[name]
	if !ok {
		return zero, exc.Newf(exc.Location{Field: name}, exc.CodeInternal,
			"no value named %q has been read", name)
	}
	t, ok := v.(T)
	if !ok {
		return zero, exc.Newf(exc.Location{Field: name}, exc.CodeInternal,
			"value %q is %s, not %s", name, kindOf(v), kind)
	}
	return t, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case int:
		return "integer"
	case float64:
		return "real"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []int:
		return "integer vector"
	case []float64:
		return "real vector"
	}
	return fmt.Sprintf("%T", v)
}
