package text

import "errors"

var (
	// ErrInvalidUTF8 signals invalid UTF-8 source bytes.
	ErrInvalidUTF8 = errors.New("text: invalid UTF-8")
	// ErrIndexOutOfBounds signals a codepoint offset beyond the sequence.
	ErrIndexOutOfBounds = errors.New("text: index out of bounds")
)
