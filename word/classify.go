package word

// CharClass describes char classifications used to compose word boundaries.
type CharClass uint8

const (
	// CharCr is a carriage return ('\r').
	CharCr CharClass = iota
	// CharLf is a line feed ('\n').
	CharLf
	// CharSpace is any whitespace character other than CR/LF.
	CharSpace
	// CharPunctuation is any ASCII punctuation character.
	CharPunctuation
	// CharOther includes letters, digits and all of non-ASCII Unicode.
	CharOther
)

// Punctuation membership bitmaps for the two ASCII blocks that contain
// punctuation. Bit i of punctLow corresponds to codepoint i (block
// U+0000..U+003F), bit i of punctHigh to codepoint 0x40+i.
const (
	punctLow  uint64 = 0xfc00fffe00000000 // ! " # $ % & ' ( ) * + , - . / : ; < = > ?
	punctHigh uint64 = 0x7800000178000001 // @ [ \ ] ^ ` { | } ~
)

// Classify returns the CharClass of a codepoint. It is total: every Unicode
// scalar value maps to exactly one class, with CharOther as the default for
// anything not explicitly special-cased.
func Classify(codepoint rune) CharClass {
	if codepoint <= ' ' {
		if codepoint == '\r' {
			return CharCr
		}
		if codepoint == '\n' {
			return CharLf
		}
		return CharSpace
	}
	if codepoint <= 0x3f {
		if (punctLow>>uint32(codepoint))&1 != 0 {
			return CharPunctuation
		}
	} else if codepoint <= 0x7f {
		if (punctHigh>>(uint32(codepoint)&0x3f))&1 != 0 {
			return CharPunctuation
		}
	}
	return CharOther
}

func (c CharClass) String() string {
	switch c {
	case CharCr:
		return "CR"
	case CharLf:
		return "LF"
	case CharSpace:
		return "Space"
	case CharPunctuation:
		return "Punctuation"
	default:
		return "Other"
	}
}

// Boundary is a word boundary kind: the start of a word, its end, or both
// at once (as between punctuation runs and word runs).
type Boundary uint8

const (
	// Interior denotes that a position is not a boundary.
	Interior Boundary = iota
	// Start indicates that a new word begins at the right-hand position.
	Start
	// End indicates that a word ends at the left-hand position.
	End
	// Both marks a position that is simultaneously an end and a start.
	Both
)

// IsStart reports whether a word starts at this boundary.
func (b Boundary) IsStart() bool {
	return b == Start || b == Both
}

// IsEnd reports whether a word ends at this boundary.
func (b Boundary) IsEnd() bool {
	return b == End || b == Both
}

// classifyBoundary maps an ordered (prev, next) class pair to a boundary
// kind. The rules form an ordered list and the first match wins: the
// explicit whitespace pairings must shadow the generic (*, Space) and
// (Space, *) arms. Whitespace runs collapse to a single interior region,
// line breaks are hard boundaries in both directions, and transitions
// between word and punctuation runs are boundaries on both sides.
func classifyBoundary(prev, next CharClass) Boundary {
	switch {
	case prev == CharLf && next == CharLf:
		return Start
	case prev == CharLf && next == CharSpace:
		return Interior
	case prev == CharCr && next == CharLf:
		return Interior
	case prev == CharSpace && next == CharLf:
		return Interior
	case prev == CharSpace && next == CharCr:
		return Interior
	case prev == CharSpace && next == CharSpace:
		return Interior
	case next == CharSpace:
		return End
	case prev == CharSpace:
		return Start
	case prev == CharLf:
		return Start
	case next == CharCr:
		return End
	case next == CharLf:
		return End
	case prev == CharPunctuation && next == CharOther:
		return Both
	case prev == CharOther && next == CharPunctuation:
		return Both
	default:
		return Interior
	}
}
