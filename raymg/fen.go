package raymg

import (
	"fmt"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
)

// FENStartPos is the standard initial position.
const FENStartPos = gm.FENStartPos

var kindFromType = map[gm.PieceType]Kind{
	gm.PieceTypePawn:   Pawn,
	gm.PieceTypeKnight: Knight,
	gm.PieceTypeBishop: Bishop,
	gm.PieceTypeRook:   Rook,
	gm.PieceTypeQueen:  Queen,
	gm.PieceTypeKing:   King,
}

var typeFromKind = map[Kind]gm.PieceType{
	Pawn:   gm.PieceTypePawn,
	Knight: gm.PieceTypeKnight,
	Bishop: gm.PieceTypeBishop,
	Rook:   gm.PieceTypeRook,
	Queen:  gm.PieceTypeQueen,
	King:   gm.PieceTypeKing,
}

// LoadFEN builds a board from a FEN string and also returns the side to move
// and the fullmove number (1 when the field is absent). Castling and en
// passant fields are accepted and ignored.
func LoadFEN(fen string) (*Board, Color, int, error) {
	pos, err := gm.ParseFEN(fen)
	if err != nil {
		return nil, White, 0, fmt.Errorf("load FEN: %w", err)
	}
	b := EmptyBoard()
	for i := 0; i < 64; i++ {
		p := pos.PieceAt(gm.Square(i))
		if p == gm.NoPiece {
			continue
		}
		kind, ok := kindFromType[p.Type()]
		if !ok {
			return nil, White, 0, fmt.Errorf("load FEN: unknown piece %d on square %d", p, i)
		}
		b.squares[i] = Encode(kind, colorFromGoose(p.Color()))
	}
	moveNumber := pos.FullmoveNumber()
	if moveNumber < 1 {
		moveNumber = 1
	}
	return b, colorFromGoose(pos.SideToMove()), moveNumber, nil
}

// FEN renders the board with the given side to move and move number. Castling
// and en passant are always "-".
func (b *Board) FEN(side Color, moveNumber int) string {
	stm := "w"
	if side == Black {
		stm = "b"
	}
	if moveNumber < 1 {
		moveNumber = 1
	}
	pos, err := gm.ParseFEN(fmt.Sprintf("8/8/8/8/8/8/8/8 %s - - 0 %d", stm, moveNumber))
	if err != nil {
		// the template above is always well formed
		panic(err)
	}
	for i, s := range b.squares {
		if s.IsEmpty() {
			continue
		}
		pos.SetPiece(gm.Square(i), gm.PieceFromType(colorToGoose(s.Color()), typeFromKind[s.Kind()]))
	}
	return pos.ToFEN()
}

func colorFromGoose(c gm.Color) Color {
	if c == gm.Black {
		return Black
	}
	return White
}

func colorToGoose(c Color) gm.Color {
	if c == Black {
		return gm.Black
	}
	return gm.White
}
