/*
Package metrics provides some pre-manufactured metrics on text sequences:
word counting and location, grapheme counting, line counting.

Word recognition here follows Unicode UAX#29 segmentation. This is a
different notion of "word" than the boundary classes the word package uses
for cursor motion: motion boundaries are tuned for editing commands, while
metrics answer "how many words does this text contain" the way a reader
would count them.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lapce.metrics'.
func tracer() tracing.Trace {
	return tracing.Select("lapce.metrics")
}
