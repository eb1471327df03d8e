/*
Package lapce is the root of an editor navigation core: cursor-based
word-boundary and bracket-pair navigation over an immutable,
codepoint-addressable text sequence.

The module is organized bottom-up:

  - text holds the immutable sequence and its bidirectional codepoint
    cursor.
  - word classifies codepoints and derives word, end-of-word, code-token
    and deletion boundaries for cursor motion and selection.
  - bracket locates counterpart delimiters, skipping nested pairs; the
    pair table lives in syntax.
  - textfile loads files into text sequences, with broadcast progress.
  - metrics counts words, graphemes and lines, using UAX segmentation.

Navigation operations never return errors: "no boundary found" and
"unbalanced delimiters" are common, expected outcomes and are reported as
a not-ok result. Callers treat absence as "no-op the requested motion".
*/
package lapce
