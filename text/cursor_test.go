package text

import (
	"strings"
	"testing"
)

func TestCursorNextPrevRoundtrip(t *testing.T) {
	s := "a😀ב\nz"
	cursor := FromString(s).NewCursor(0)

	var got []rune
	for {
		r, ok := cursor.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}
	want := []rune(s)
	if len(got) != len(want) {
		t.Fatalf("forward rune count=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("forward rune[%d]=%q want=%q", i, got[i], want[i])
		}
	}
	if cursor.Pos() != uint64(len(want)) {
		t.Fatalf("position after forward scan=%d want=%d", cursor.Pos(), len(want))
	}

	var back []rune
	for {
		r, ok := cursor.Prev()
		if !ok {
			break
		}
		back = append(back, r)
	}
	if len(back) != len(want) {
		t.Fatalf("backward rune count=%d want=%d", len(back), len(want))
	}
	for i := range want {
		if back[i] != want[len(want)-1-i] {
			t.Fatalf("backward rune[%d]=%q want=%q", i, back[i], want[len(want)-1-i])
		}
	}
	if cursor.Pos() != 0 {
		t.Fatalf("position after backward scan=%d want=0", cursor.Pos())
	}
}

func TestCursorPeekDoesNotConsume(t *testing.T) {
	cursor := FromString("ab").NewCursor(0)
	r, ok := cursor.PeekNext()
	if !ok || r != 'a' {
		t.Fatalf("peek=%q ok=%v want 'a'", r, ok)
	}
	if cursor.Pos() != 0 {
		t.Fatalf("peek moved the cursor to %d", cursor.Pos())
	}
	r, ok = cursor.Next()
	if !ok || r != 'a' {
		t.Fatalf("next after peek=%q ok=%v want 'a'", r, ok)
	}
}

func TestCursorSeek(t *testing.T) {
	tx := FromString("héllo wörld")
	cursor := tx.NewCursor(6)
	r, ok := cursor.PeekNext()
	if !ok || r != 'w' {
		t.Fatalf("rune at offset 6=%q ok=%v want 'w'", r, ok)
	}
	cursor.SetPos(1)
	if r, ok = cursor.Next(); !ok || r != 'é' {
		t.Fatalf("rune at offset 1=%q ok=%v want 'é'", r, ok)
	}
	// Offsets beyond the end clamp to the end.
	cursor.SetPos(99)
	if cursor.Pos() != tx.Len() {
		t.Fatalf("clamped position=%d want=%d", cursor.Pos(), tx.Len())
	}
	if _, ok = cursor.Next(); ok {
		t.Fatalf("Next at end-of-sequence should fail")
	}
	if r, ok = cursor.Prev(); !ok || r != 'd' {
		t.Fatalf("Prev at end=%q ok=%v want 'd'", r, ok)
	}
}

func TestCursorOnEmptyText(t *testing.T) {
	cursor := Text{}.NewCursor(0)
	if _, ok := cursor.PeekNext(); ok {
		t.Fatalf("PeekNext on empty text should fail")
	}
	if _, ok := cursor.Next(); ok {
		t.Fatalf("Next on empty text should fail")
	}
	if _, ok := cursor.Prev(); ok {
		t.Fatalf("Prev on empty text should fail")
	}
	if cursor.Pos() != 0 {
		t.Fatalf("position on empty text=%d want=0", cursor.Pos())
	}
}

func TestCursorAcrossFragments(t *testing.T) {
	s := strings.Repeat("xé", 600) // forces several fragments
	tx := FromString(s)
	if len(tx.frags) < 2 {
		t.Fatalf("expected content to span multiple fragments")
	}
	cursor := tx.NewCursor(tx.Len())
	var n uint64
	for {
		if _, ok := cursor.Prev(); !ok {
			break
		}
		n++
	}
	if n != tx.Len() {
		t.Fatalf("backward scan across fragments consumed %d runes, want %d", n, tx.Len())
	}

	// Seek into the middle and verify local neighborhood.
	cursor.SetPos(601)
	r, ok := cursor.Next()
	if !ok || r != 'é' {
		t.Fatalf("rune at odd offset=%q ok=%v want 'é'", r, ok)
	}
	r, ok = cursor.Next()
	if !ok || r != 'x' {
		t.Fatalf("rune at even offset=%q ok=%v want 'x'", r, ok)
	}
}
