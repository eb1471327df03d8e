package word

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ArtiomTr/lapce/text"
)

// makePalette assigns a console color to every character class.
func makePalette() map[CharClass]*color.Color {
	return map[CharClass]*color.Color{
		CharCr:          color.New(color.FgHiBlack),
		CharLf:          color.New(color.FgHiBlack),
		CharSpace:       color.New(color.FgCyan),
		CharPunctuation: color.New(color.FgYellow),
		CharOther:       color.New(color.FgGreen),
	}
}

// Dump writes a per-codepoint classification listing of t to w, one line
// per codepoint, color-coded by class. It is a debugging aid for inspecting
// classifier and boundary behavior on a concrete text.
//
// Colors are suppressed when w is a file that is not a terminal.
func Dump(w io.Writer, t text.Text) {
	tracer().Debugf("word.Dump: listing %d codepoints", t.Len())
	palette := makePalette()
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		for _, c := range palette {
			c.DisableColor()
		}
	}
	cursor := t.NewCursor(0)
	for {
		pos := cursor.Pos()
		r, ok := cursor.Next()
		if !ok {
			break
		}
		class := Classify(r)
		_, _ = palette[class].Fprintf(w, "%6d  %-14q %s\n", pos, r, class)
	}
}
