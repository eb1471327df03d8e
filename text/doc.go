/*
Package text provides an immutable text sequence addressed by codepoint
offsets, together with a bidirectional codepoint cursor.

A Text stores UTF-8 content in fragments with per-fragment codepoint and
line summaries. It is a snapshot: navigation code borrows it for the
lifetime of a cursor and never mutates it. All offsets handed in or out of
this package count Unicode scalar values, not bytes.

Cursors are cheap, call-local objects. A cursor is not safe for concurrent
use; each navigation call is expected to own its cursor exclusively and
discard it afterwards.
*/
package text

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lapce.text'.
func tracer() tracing.Trace {
	return tracing.Select("lapce.text")
}
