package metrics

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"

	"github.com/ArtiomTr/lapce/text"
)

// Span is a codepoint-range descriptor inside a text snapshot.
//
// Pos is the start codepoint offset, Len is the span length in codepoints.
type Span struct {
	Pos uint64
	Len uint64
}

// WordSpans scans t for words and returns their codepoint spans, in
// logical order. Segmentation follows UAX#29; segments without a letter or
// digit (whitespace and punctuation runs) are not counted as words.
func WordSpans(t text.Text) ([]Span, error) {
	if t.IsVoid() {
		return nil, nil
	}
	onWords := uax29.NewWordBreaker(1)
	segmenter := segment.NewSegmenter(onWords)
	segmenter.Init(strings.NewReader(t.String()))
	spans := make([]Span, 0, 8)
	var pos uint64
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		runes := uint64(utf8.RuneCountInString(frag))
		if isWord(frag) {
			spans = append(spans, Span{Pos: pos, Len: runes})
		}
		pos += runes
	}
	if err := segmenter.Err(); err != nil {
		return nil, fmt.Errorf("metrics: word segmentation failed: %w", err)
	}
	tracer().Debugf("metrics.WordSpans: %d words in %d codepoints", len(spans), t.Len())
	return spans, nil
}

// WordCount returns the number of words in t, per UAX#29 segmentation.
func WordCount(t text.Text) (int, error) {
	spans, err := WordSpans(t)
	if err != nil {
		return -1, err
	}
	return len(spans), nil
}

// GraphemeCount returns the number of grapheme clusters in t. This is the
// user-perceived character count, which may be smaller than t.Len() for
// combining sequences.
func GraphemeCount(t text.Text) int {
	if t.IsVoid() {
		return 0
	}
	return grapheme.StringFromString(t.String()).Len()
}

// LineCount returns the number of newline characters in t.
func LineCount(t text.Text) uint64 {
	return t.LineCount()
}

// isWord reports whether a segment counts as a word: it must contain at
// least one letter or digit.
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
