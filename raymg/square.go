package raymg

import (
	"fmt"
	"math/bits"
)

// Kind is the one-hot piece kind stored in the low six bits of a Square.
type Kind uint8

const (
	NoKind Kind = 0
	Pawn   Kind = 1 << 0
	Knight Kind = 1 << 1
	Bishop Kind = 1 << 2
	Rook   Kind = 1 << 3
	Queen  Kind = 1 << 4
	King   Kind = 1 << 5

	kindMask Kind = 0x3F
)

// Kinds lists the six piece kinds in table order.
var Kinds = [6]Kind{Pawn, Knight, Bishop, Rook, Queen, King}

// Valid reports whether k is exactly one of the six piece kinds.
func (k Kind) Valid() bool {
	return k != NoKind && k&^kindMask == 0 && bits.OnesCount8(uint8(k)) == 1
}

// index maps a valid kind to [0..5] for table lookups.
func (k Kind) index() int { return bits.TrailingZeros8(uint8(k)) }

func (k Kind) String() string {
	switch k {
	case NoKind:
		return "empty"
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return fmt.Sprintf("Kind(%#x)", uint8(k))
}

// Color is the side owning a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Square is the encoded occupant of one board cell.
//
// Bits 0-5 hold the one-hot Kind, bit 6 the Color and bit 7 a reserved flag
// that move generation never reads.
type Square uint8

const (
	colorBit Square = 1 << 6
	flagBit  Square = 1 << 7
)

// Empty is the empty-square sentinel.
const Empty Square = 0

// Encode packs a kind and a color. It panics on a kind outside the six piece
// kinds or on an unknown color.
func Encode(kind Kind, color Color) Square {
	if !kind.Valid() {
		panic(fmt.Sprintf("raymg.Encode: invalid kind %#x", uint8(kind)))
	}
	switch color {
	case White:
		return Square(kind)
	case Black:
		return Square(kind) | colorBit
	}
	panic(fmt.Sprintf("raymg.Encode: invalid color %d", color))
}

// Decode splits a square into its kind and color. Empty decodes to (NoKind, White).
func Decode(s Square) (Kind, Color) { return s.Kind(), s.Color() }

// Kind returns the piece kind, NoKind for an empty square.
func (s Square) Kind() Kind { return Kind(s) & kindMask }

// Color returns the owning side. Empty squares report White.
func (s Square) Color() Color {
	if s&colorBit != 0 {
		return Black
	}
	return White
}

// IsEmpty reports whether no piece-kind bit is set.
func (s Square) IsEmpty() bool { return s.Kind() == NoKind }

// Flagged reports the reserved flag bit.
func (s Square) Flagged() bool { return s&flagBit != 0 }

// WithFlag returns s with the reserved flag bit set or cleared.
func (s Square) WithFlag(on bool) Square {
	if on {
		return s | flagBit
	}
	return s &^ flagBit
}

func (s Square) String() string {
	if s.IsEmpty() {
		return "empty"
	}
	return s.Color().String() + " " + s.Kind().String()
}
