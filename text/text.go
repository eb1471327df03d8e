package text

import (
	"strings"
	"unicode/utf8"
)

// maxFragment is the target fragment payload length in bytes. Fragments are
// cut at codepoint boundaries only, so the last rune of a fragment may make
// it slightly shorter than the target.
const maxFragment = 512

// fragment is one immutable piece of a Text, with pre-computed summaries.
type fragment struct {
	content string
	runes   uint32
	lines   uint32
}

// Text is an immutable sequence of Unicode scalar values.
//
// A Text created by
//
//	Text{}
//
// is a valid object and behaves like the empty string. All positional
// methods take and return codepoint offsets.
type Text struct {
	frags []fragment
	runes uint64
	bytes uint64
	lines uint64
}

// FromString creates a text sequence from a Go string.
//
// The input must be valid UTF-8; invalid bytes are rejected by FromBytes,
// which FromString delegates to for validation.
func FromString(s string) Text {
	t, err := FromBytes([]byte(s))
	if err != nil {
		// Go strings may carry invalid UTF-8; treat it like FromBytes does
		// and fail loudly rather than mis-addressing codepoints.
		panic("text.FromString: " + err.Error())
	}
	return t
}

// FromBytes creates a text sequence from UTF-8 bytes.
func FromBytes(b []byte) (Text, error) {
	if !utf8.Valid(b) {
		tracer().Errorf("text.FromBytes: input is not valid UTF-8")
		return Text{}, ErrInvalidUTF8
	}
	var t Text
	for len(b) > 0 {
		n := fragmentCut(b)
		t.appendFragment(string(b[:n]))
		b = b[n:]
	}
	return t, nil
}

// fragmentCut returns the length of the next fragment to cut from b,
// at most maxFragment bytes and always at a codepoint boundary.
func fragmentCut(b []byte) int {
	if len(b) <= maxFragment {
		return len(b)
	}
	n := maxFragment
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return n
}

func (t *Text) appendFragment(content string) {
	if len(content) == 0 {
		return
	}
	frag := fragment{content: content}
	for _, r := range content {
		frag.runes++
		if r == '\n' {
			frag.lines++
		}
	}
	t.frags = append(t.frags, frag)
	t.runes += uint64(frag.runes)
	t.bytes += uint64(len(content))
	t.lines += uint64(frag.lines)
}

// Len returns the sequence length in codepoints.
func (t Text) Len() uint64 {
	return t.runes
}

// ByteLen returns the sequence length in bytes.
func (t Text) ByteLen() uint64 {
	return t.bytes
}

// LineCount returns the number of newline characters in the sequence.
func (t Text) LineCount() uint64 {
	return t.lines
}

// IsVoid reports whether the sequence has no codepoints.
func (t Text) IsVoid() bool {
	return t.runes == 0
}

// String returns the complete sequence as a Go string. This allocates a
// buffer for all bytes and collects every fragment.
func (t Text) String() string {
	if len(t.frags) == 1 {
		return t.frags[0].content
	}
	var sb strings.Builder
	sb.Grow(int(t.bytes))
	for _, frag := range t.frags {
		sb.WriteString(frag.content)
	}
	return sb.String()
}

// Report returns the subsequence of l codepoints starting at codepoint
// offset i.
func (t Text) Report(i, l uint64) (string, error) {
	if i > t.runes || l > t.runes-i {
		return "", ErrIndexOutOfBounds
	}
	if l == 0 {
		return "", nil
	}
	var sb strings.Builder
	cursor := t.NewCursor(i)
	for n := uint64(0); n < l; n++ {
		r, ok := cursor.Next()
		if !ok {
			return "", ErrIndexOutOfBounds
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
