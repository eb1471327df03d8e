// Package syntax provides the static delimiter-pair table consumed by
// bracket matching: which characters pair with which, and whether a
// delimiter opens or closes its pair.
package syntax

// MatchingChar returns the counterpart of a delimiter character and
// ok=false if c is not a recognized delimiter.
func MatchingChar(c rune) (rune, bool) {
	switch c {
	case '{':
		return '}', true
	case '}':
		return '{', true
	case '(':
		return ')', true
	case ')':
		return '(', true
	case '[':
		return ']', true
	case ']':
		return '[', true
	}
	return 0, false
}

// MatchingPairDirection reports whether a recognized delimiter is an
// opener. ok=false if c is not a recognized delimiter.
func MatchingPairDirection(c rune) (opener, ok bool) {
	switch c {
	case '{', '(', '[':
		return true, true
	case '}', ')', ']':
		return false, true
	}
	return false, false
}

// Pairs is the default delimiter pairing, backed by the static table
// above. It satisfies bracket.Pairing.
type Pairs struct{}

// Counterpart returns the pair character of a delimiter.
func (Pairs) Counterpart(c rune) (rune, bool) {
	return MatchingChar(c)
}

// IsOpener classifies a recognized delimiter as opener or closer.
func (Pairs) IsOpener(c rune) (bool, bool) {
	return MatchingPairDirection(c)
}
