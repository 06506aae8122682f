// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package linefield implements the field components that parse one record
// line of the legacy structured input format: a keyword followed by an
// ordered sequence of typed fields separated by whitespace.
package linefield

import (
	"strings"

	"github.com/condio/datline/internal/optional"
)

// Cursor is a mutable view over the remaining unparsed text of one record
// line, shared by the record's ordered field sequence. Label-addressed fields
// (Separator, Selection) locate their label anywhere in the remaining text
// and remove it, repositioning the cursor just after the removal point;
// value fields then read tokens positionally from the cursor.
//
// Every mutation is transactional: a consumed token or label is removed from
// the stored text in the same operation that repositions the cursor, so the
// position can never point into erased content.
//
// A Cursor belongs to exactly one record and must not be shared across
// concurrently parsed records.
type Cursor struct {
	text string
	pos  int
}

// NewCursor wraps the remainder of a record line after its keyword. The text
// is padded with one space on each side so that label search can rely on
// labels being surrounded by spaces even at the line boundaries.
func NewCursor(text string) *Cursor {
	return &Cursor{text: " " + text + " "}
}

// Empty reports whether the cursor has been positioned at the end of the
// text. This only happens after SkipToEnd; field variants use it to read
// remaining optional fields as absent.
func (c *Cursor) Empty() bool {
	return c.pos >= len(c.text)
}

// ExtractToken reads the next whitespace-delimited token at the current
// position, removes it from the stored text, and leaves the position where it
// was, so the next field still starts reading from the same point. Returns ""
// when only whitespace remains.
func (c *Cursor) ExtractToken() string {
	if c.Empty() {
		return ""
	}
	start := c.pos
	for start < len(c.text) && isSpace(c.text[start]) {
		start++
	}
	end := start
	for end < len(c.text) && !isSpace(c.text[end]) {
		end++
	}
	if start == end {
		return ""
	}
	token := c.text[start:end]
	c.text = c.text[:start] + c.text[end:]
	return token
}

// FindLabel searches the whole text for label surrounded by single spaces and
// returns the position of its first character. The surrounding spaces guard
// against matching a longer token that merely contains the label.
func (c *Cursor) FindLabel(label string) optional.Optional[int] {
	idx := strings.Index(c.text, " "+label+" ")
	if idx < 0 {
		return optional.None[int]()
	}
	return optional.Some(idx + 1)
}

// ConsumeLabelAt removes length bytes at pos and repositions the cursor
// there, so the next token read yields the value following the label.
func (c *Cursor) ConsumeLabelAt(pos int, length int) {
	if pos < 0 || pos+length > len(c.text) {
		return
	}
	c.text = c.text[:pos] + c.text[pos+length:]
	c.pos = pos
}

// SkipToEnd positions the cursor at the end of the text, making all
// subsequent optional fields read as absent.
func (c *Cursor) SkipToEnd() {
	c.pos = len(c.text)
}

// Rest returns the remaining text from the current position.
func (c *Cursor) Rest() string {
	if c.Empty() {
		return ""
	}
	return c.text[c.pos:]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
