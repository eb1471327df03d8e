package text

import (
	"unicode/utf8"
)

// Cursor navigates a text sequence by codepoint positions.
//
// The cursor is bound to one Text snapshot. It sits between codepoints:
// Next consumes the codepoint to the right, Prev the one to the left.
// Position 0 is before the first codepoint, position Len() after the last.
type Cursor struct {
	text Text
	frag int    // index of the fragment holding the next codepoint
	off  int    // byte offset into that fragment
	pos  uint64 // absolute codepoint offset
}

// NewCursor creates a cursor positioned at codepoint offset pos.
// Offsets beyond the end of the sequence clamp to the end.
func (t Text) NewCursor(pos uint64) *Cursor {
	c := &Cursor{text: t}
	c.SetPos(pos)
	return c
}

// Pos returns the current codepoint offset.
func (c *Cursor) Pos() uint64 {
	if c == nil {
		return 0
	}
	return c.pos
}

// SetPos moves the cursor to absolute codepoint offset n.
// Offsets beyond the end of the sequence clamp to the end.
func (c *Cursor) SetPos(n uint64) {
	if c == nil {
		return
	}
	if n > c.text.runes {
		n = c.text.runes
	}
	c.pos = n
	c.frag = 0
	c.off = 0
	for c.frag < len(c.text.frags) {
		fragRunes := uint64(c.text.frags[c.frag].runes)
		if n < fragRunes {
			break
		}
		n -= fragRunes
		c.frag++
	}
	if c.frag == len(c.text.frags) {
		return // at end of sequence
	}
	content := c.text.frags[c.frag].content
	for n > 0 {
		_, size := utf8.DecodeRuneInString(content[c.off:])
		c.off += size
		n--
	}
}

// PeekNext returns the codepoint at the current position without consuming
// it. At end-of-sequence ok is false.
func (c *Cursor) PeekNext() (r rune, ok bool) {
	if c == nil || c.pos >= c.text.runes {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.text.frags[c.frag].content[c.off:])
	return r, true
}

// Next returns the codepoint at the current position and advances past it.
// At end-of-sequence ok is false.
func (c *Cursor) Next() (r rune, ok bool) {
	if c == nil || c.pos >= c.text.runes {
		return 0, false
	}
	content := c.text.frags[c.frag].content
	r, size := utf8.DecodeRuneInString(content[c.off:])
	c.off += size
	c.pos++
	if c.off == len(content) {
		c.frag++
		c.off = 0
	}
	return r, true
}

// Prev returns the codepoint before the current position and moves back
// past it. At start-of-sequence ok is false.
func (c *Cursor) Prev() (r rune, ok bool) {
	if c == nil || c.pos == 0 {
		return 0, false
	}
	if c.off == 0 {
		c.frag--
		c.off = len(c.text.frags[c.frag].content)
	}
	content := c.text.frags[c.frag].content
	r, size := utf8.DecodeLastRuneInString(content[:c.off])
	c.off -= size
	c.pos--
	return r, true
}
