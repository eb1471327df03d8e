package word

import (
	"github.com/ArtiomTr/lapce/text"
)

// Motion is the word-navigation operation set. It exists so that further
// cursor flavors (a non-modal variant, say) can share one contract; Cursor
// is the only implementation in this package.
type Motion interface {
	NextBoundary() (uint64, bool)
	PrevBoundary() (uint64, bool)
	EndBoundary() (uint64, bool)
	PrevCodeBoundary() uint64
	NextCodeBoundary() uint64
	SelectWord() (start, end uint64)
	PrevDeletionBoundary() (uint64, bool)
}

// Cursor navigates a text sequence by word boundaries.
//
// Boundary-finding operations reposition the cursor to the boundary they
// return; operations that find nothing leave the cursor wherever the scan
// stopped and report ok=false.
type Cursor struct {
	inner *text.Cursor
}

var _ Motion = (*Cursor)(nil)

// NewCursor creates a word cursor over t at codepoint offset pos.
func NewCursor(t text.Text, pos uint64) *Cursor {
	return &Cursor{inner: t.NewCursor(pos)}
}

// Inner exposes the underlying text cursor.
func (wc *Cursor) Inner() *text.Cursor {
	return wc.inner
}

// NextBoundary finds the next start boundary of a word and repositions the
// cursor there. Reports ok=false if the sequence ends before a boundary is
// found.
func (wc *Cursor) NextBoundary() (uint64, bool) {
	ch, ok := wc.inner.Next()
	if !ok {
		return 0, false
	}
	prop := Classify(ch)
	candidate := wc.inner.Pos()
	for {
		next, ok := wc.inner.Next()
		if !ok {
			break
		}
		propNext := Classify(next)
		if classifyBoundary(prop, propNext).IsStart() {
			break
		}
		prop = propNext
		candidate = wc.inner.Pos()
	}
	wc.inner.SetPos(candidate)
	return candidate, true
}

// EndBoundary finds the next end boundary of a word (the offset one past
// its last codepoint) and repositions the cursor there. The scan first
// steps off the current codepoint so that a cursor already on a word's
// first character still finds that word's end.
func (wc *Cursor) EndBoundary() (uint64, bool) {
	wc.inner.Next()
	ch, ok := wc.inner.Next()
	if !ok {
		return 0, false
	}
	prop := Classify(ch)
	candidate := wc.inner.Pos()
	for {
		next, ok := wc.inner.Next()
		if !ok {
			break
		}
		propNext := Classify(next)
		if classifyBoundary(prop, propNext).IsEnd() {
			break
		}
		prop = propNext
		candidate = wc.inner.Pos()
	}
	wc.inner.SetPos(candidate)
	return candidate, true
}

// PrevBoundary finds the previous start boundary of a word and repositions
// the cursor there. Reports ok=false when starting at offset 0.
func (wc *Cursor) PrevBoundary() (uint64, bool) {
	ch, ok := wc.inner.Prev()
	if !ok {
		return 0, false
	}
	prop := Classify(ch)
	candidate := wc.inner.Pos()
	for {
		prev, ok := wc.inner.Prev()
		if !ok {
			break
		}
		propPrev := Classify(prev)
		if classifyBoundary(propPrev, prop).IsStart() {
			break
		}
		prop = propPrev
		candidate = wc.inner.Pos()
	}
	wc.inner.SetPos(candidate)
	return candidate, true
}

// PrevCodeBoundary returns the start of the contiguous run of CharOther
// codepoints the cursor is in, scanning backward. Never fails: off an
// Other run it returns the current offset. The cursor is left where the
// scan stopped.
func (wc *Cursor) PrevCodeBoundary() uint64 {
	candidate := wc.inner.Pos()
	for {
		prev, ok := wc.inner.Prev()
		if !ok {
			break
		}
		if Classify(prev) != CharOther {
			break
		}
		candidate = wc.inner.Pos()
	}
	return candidate
}

// NextCodeBoundary returns the offset one past the contiguous run of
// CharOther codepoints the cursor is in, scanning forward. Never fails.
// The cursor is left where the scan stopped.
func (wc *Cursor) NextCodeBoundary() uint64 {
	candidate := wc.inner.Pos()
	for {
		next, ok := wc.inner.Next()
		if !ok {
			break
		}
		if Classify(next) != CharOther {
			break
		}
		candidate = wc.inner.Pos()
	}
	return candidate
}

// SelectWord returns the [start, end) bounds of the maximal run of
// CharOther codepoints straddling the initial cursor position. Adjacent
// punctuation and whitespace are excluded.
func (wc *Cursor) SelectWord() (uint64, uint64) {
	initial := wc.inner.Pos()
	end := wc.NextCodeBoundary()
	wc.inner.SetPos(initial)
	start := wc.PrevCodeBoundary()
	return start, end
}

// NextNonBlankChar returns the offset of the first non-whitespace codepoint
// at or after the cursor and repositions the cursor there. Never fails: if
// the sequence ends first, the furthest position reached is returned.
func (wc *Cursor) NextNonBlankChar() uint64 {
	candidate := wc.inner.Pos()
	for {
		next, ok := wc.inner.Next()
		if !ok {
			break
		}
		if Classify(next) != CharSpace {
			break
		}
		candidate = wc.inner.Pos()
	}
	wc.inner.SetPos(candidate)
	return candidate
}

// PrevDeletionBoundary computes where the cursor should land after a
// delete-word-backward command and repositions the cursor there.
//
// This differs from PrevBoundary: runs of more than one blank are trimmed
// without touching the word before them, and crossing a line break removes
// only the break and its trailing blanks, preserving the content on the
// far side. An all-blank line prefix stops deletion at the line start.
// Reports ok=false only when starting at offset 0.
func (wc *Cursor) PrevDeletionBoundary() (uint64, bool) {
	ch, ok := wc.inner.Prev()
	if !ok {
		return 0, false
	}
	prop := Classify(ch)
	candidate := wc.inner.Pos()

	// The keep-word conditions accumulate separately so their precedence
	// stays auditable.
	seenMultiBlank := false
	seenLinebreak := false
	for {
		prev, ok := wc.inner.Prev()
		if !ok {
			break
		}
		propPrev := Classify(prev)

		// Line beginning reached without any non-whitespace characters.
		if propPrev == CharLf && prop == CharSpace {
			break
		}

		// More than a single blank: only trim whitespace, keep the word.
		if prop == CharSpace && propPrev == CharSpace {
			seenMultiBlank = true
		}

		// Crossing a line break: keep the word on the far side, delete
		// the break and trailing blanks only.
		if prop == CharLf || prop == CharCr {
			seenLinebreak = true
		}

		// Content that must be preserved under the conditions above.
		if (seenMultiBlank || seenLinebreak) &&
			(propPrev == CharPunctuation || propPrev == CharOther) {
			break
		}

		// Ordinary word-start boundary: standard one-word deletion.
		if classifyBoundary(propPrev, prop).IsStart() {
			break
		}
		prop = propPrev
		candidate = wc.inner.Pos()
	}
	wc.inner.SetPos(candidate)
	return candidate, true
}
