// Package render draws boards for terminals.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/notnil/chess"

	"raychess/game"
	"raychess/raymg"
)

var letters = map[raymg.Kind]byte{
	raymg.Pawn:   'P',
	raymg.Knight: 'N',
	raymg.Bishop: 'B',
	raymg.Rook:   'R',
	raymg.Queen:  'Q',
	raymg.King:   'K',
}

var pieceTypes = map[raymg.Kind]chess.PieceType{
	raymg.Pawn:   chess.Pawn,
	raymg.Knight: chess.Knight,
	raymg.Bishop: chess.Bishop,
	raymg.Rook:   chess.Rook,
	raymg.Queen:  chess.Queen,
	raymg.King:   chess.King,
}

// Letter returns the piece letter, upper case for White and lower case for
// Black, or ' ' for an empty square.
func Letter(s raymg.Square) byte {
	c, ok := letters[s.Kind()]
	if !ok {
		return ' '
	}
	if s.Color() == raymg.Black {
		c += 'a' - 'A'
	}
	return c
}

// Glyph returns the unicode chess symbol for s, or " " for an empty square.
func Glyph(s raymg.Square) string {
	pt, ok := pieceTypes[s.Kind()]
	if !ok {
		return " "
	}
	c := chess.White
	if s.Color() == raymg.Black {
		c = chess.Black
	}
	return chess.NewPiece(pt, c).String()
}

const ansiReset = "\033[0m"

// Text renders a board as text, rank 8 at the top. With Color set it uses ANSI
// backgrounds for the squares, yellow for the selection, blue pieces for White
// and red pieces for Black. Without it, highlighted squares are bracketed.
type Text struct {
	Color bool
	// Unicode draws glyphs instead of letters.
	Unicode bool
}

var _ game.Renderer = Text{}

// Render implements game.Renderer.
func (t Text) Render(w io.Writer, b *raymg.Board, sel *game.Selection) error {
	var sb strings.Builder
	for rank := raymg.MaxCoord; rank >= raymg.MinCoord; rank-- {
		for file := raymg.MinCoord; file <= raymg.MaxCoord; file++ {
			s := b.Get(file, rank)
			lit := sel != nil && ((file == sel.File && rank == sel.Rank) || sel.Dest.Has(file, rank))
			t.square(&sb, s, (file+rank)%2 == 0, lit)
		}
		fmt.Fprintf(&sb, " %d\n", rank)
	}
	sb.WriteString(" A  B  C  D  E  F  G  H\n\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (t Text) square(sb *strings.Builder, s raymg.Square, dark, lit bool) {
	sym := string(Letter(s))
	if t.Unicode {
		sym = Glyph(s)
	}
	if !t.Color {
		if lit {
			sb.WriteString("[" + sym + "]")
		} else {
			sb.WriteString(" " + sym + " ")
		}
		return
	}
	bg := "47"
	if dark {
		bg = "40"
	}
	if lit {
		bg = "43"
	}
	fg := "94"
	if s.Color() == raymg.Black {
		fg = "91"
	}
	fmt.Fprintf(sb, "\033[%s;%sm %s %s", bg, fg, sym, ansiReset)
}
