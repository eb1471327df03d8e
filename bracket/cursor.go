// Package bracket locates the counterpart of a delimiter character,
// skipping nested pairs. Unmatched or partially matched input is an
// expected outcome, reported as not-found rather than as an error.
package bracket

import (
	"github.com/ArtiomTr/lapce/syntax"
	"github.com/ArtiomTr/lapce/text"
)

// Pairing looks up delimiter counterparts and pairing direction. It is a
// stateless table; syntax.Pairs is the default implementation.
type Pairing interface {
	// Counterpart returns the pair character of a delimiter, ok=false if
	// the character is not a recognized delimiter.
	Counterpart(c rune) (rune, bool)
	// IsOpener classifies a recognized delimiter as opener or closer,
	// ok=false if the character is not a recognized delimiter.
	IsOpener(c rune) (bool, bool)
}

// Cursor navigates a text sequence by delimiter pairs.
type Cursor struct {
	inner *text.Cursor
	pairs Pairing
}

// NewCursor creates a bracket cursor over t at codepoint offset pos, using
// the default pair table.
func NewCursor(t text.Text, pos uint64) *Cursor {
	return NewCursorWithPairing(t, pos, syntax.Pairs{})
}

// NewCursorWithPairing creates a bracket cursor with a caller-supplied
// delimiter pairing.
func NewCursorWithPairing(t text.Text, pos uint64, pairs Pairing) *Cursor {
	return &Cursor{inner: t.NewCursor(pos), pairs: pairs}
}

// MatchPairs looks for the pair of the delimiter under the cursor, forward
// for opening characters and backward for closing ones, and returns the
// matched character's offset. Reports ok=false if the character under the
// cursor is not a recognized delimiter or its pair cannot be found.
func (bc *Cursor) MatchPairs() (uint64, bool) {
	c, ok := bc.inner.PeekNext()
	if !ok {
		return 0, false
	}
	other, ok := bc.pairs.Counterpart(c)
	if !ok {
		return 0, false
	}
	left, ok := bc.pairs.IsOpener(other)
	if !ok {
		return 0, false
	}
	if left {
		// The character under the cursor closes a pair; its opener lies
		// somewhere to the left.
		return bc.PreviousUnmatched(other)
	}
	bc.inner.Next()
	offset, ok := bc.NextUnmatched(other)
	if !ok {
		return 0, false
	}
	// The forward scan stops one past the matched closer.
	return offset - 1, true
}

// NextUnmatched takes a matchable character and looks forward for the
// first unmatched occurrence, ignoring matched pairs encountered on the
// way. The returned offset is one past the found character.
func (bc *Cursor) NextUnmatched(c rune) (uint64, bool) {
	other, ok := bc.pairs.Counterpart(c)
	if !ok {
		return 0, false
	}
	n := 0
	for {
		current, ok := bc.inner.Next()
		if !ok {
			break
		}
		if current == c && n == 0 {
			return bc.inner.Pos(), true
		}
		if current == other {
			n++
		} else if current == c {
			n--
		}
	}
	return 0, false
}

// PreviousUnmatched takes a matchable character and looks backward for the
// first unmatched occurrence, ignoring matched pairs encountered on the
// way. The returned offset is that of the found character.
func (bc *Cursor) PreviousUnmatched(c rune) (uint64, bool) {
	other, ok := bc.pairs.Counterpart(c)
	if !ok {
		return 0, false
	}
	n := 0
	for {
		current, ok := bc.inner.Prev()
		if !ok {
			break
		}
		if current == c && n == 0 {
			return bc.inner.Pos(), true
		}
		if current == other {
			n++
		} else if current == c {
			n--
		}
	}
	return 0, false
}
