package metrics

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"

	"github.com/ArtiomTr/lapce/text"
)

func TestWordCount(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tx := text.FromString("Hello  my\nname\tis Simon")
	count, err := WordCount(tx)
	if err != nil {
		t.Fatalf("WordCount failed: %v", err)
	}
	if count != 5 {
		t.Fatalf("word count=%d want=5", count)
	}
}

func TestWordCountIgnoresPunctuationRuns(t *testing.T) {
	tx := text.FromString("Hello, world!")
	count, err := WordCount(tx)
	if err != nil {
		t.Fatalf("WordCount failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("word count=%d want=2", count)
	}
}

func TestWordCountOnEmptyText(t *testing.T) {
	count, err := WordCount(text.Text{})
	if err != nil {
		t.Fatalf("WordCount failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("word count=%d want=0", count)
	}
}

func TestWordSpans(t *testing.T) {
	tx := text.FromString("xx Hello")
	spans, err := WordSpans(tx)
	if err != nil {
		t.Fatalf("WordSpans failed: %v", err)
	}
	want := []Span{
		{Pos: 0, Len: 2},
		{Pos: 3, Len: 5},
	}
	if len(spans) != len(want) {
		t.Fatalf("span count=%d want=%d", len(spans), len(want))
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Fatalf("span %d mismatch: got=%+v want=%+v", i, spans[i], want[i])
		}
	}
}

func TestWordSpansUseCodepointOffsets(t *testing.T) {
	tx := text.FromString("héllo wörld")
	spans, err := WordSpans(tx)
	if err != nil {
		t.Fatalf("WordSpans failed: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("span count=%d want=2", len(spans))
	}
	if spans[1] != (Span{Pos: 6, Len: 5}) {
		t.Fatalf("second span=%+v want={Pos:6 Len:5}", spans[1])
	}
}

func TestGraphemeCount(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	//
	tx := text.FromString("héllo")
	if got := GraphemeCount(tx); got != 5 {
		t.Fatalf("grapheme count=%d want=5", got)
	}
	// 'e' followed by a combining acute accent is one grapheme cluster
	// but two codepoints.
	tx = text.FromString("é")
	if got := GraphemeCount(tx); got != 1 {
		t.Fatalf("grapheme count=%d want=1", got)
	}
	if tx.Len() != 2 {
		t.Fatalf("codepoint count=%d want=2", tx.Len())
	}
}

func TestLineCount(t *testing.T) {
	tx := text.FromString("one\ntwo\nthree")
	if got := LineCount(tx); got != 2 {
		t.Fatalf("line count=%d want=2", got)
	}
}
