/*
Package word derives word, end-of-word, code-token and deletion boundaries
over a text sequence, for cursor motion and selection commands.

The engine is a pair of small pure functions plus a cursor:

  - Classify maps one codepoint to a character class (CR, LF, whitespace,
    punctuation, everything else).
  - classifyBoundary maps an ordered pair of classes to a boundary kind.
    The rule table is ordered; earlier rules shadow later catch-alls.
  - Cursor consumes the two tables with direction- and intent-specific
    scan loops (word start vs. word end vs. deletion semantics).

All operations are call-local: a Cursor holds nothing but a text cursor and
is meant to be created per navigation command and discarded.
*/
package word

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lapce.word'.
func tracer() tracing.Trace {
	return tracing.Select("lapce.word")
}
