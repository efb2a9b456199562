package raymg

import "fmt"

const (
	MinCoord = 1
	MaxCoord = 8
)

// Board is a 64-square mailbox of encoded squares.
//
// Squares are addressed by file and rank in [1,8]; file 1 is the a-file and
// rank 1 is White's back rank. The internal layout puts a1 at index 0 and h8 at
// index 63, the same order the bitboards in Destinations and Occupancy use.
type Board struct {
	squares [64]Square
}

// OnBoard reports whether (file, rank) addresses a square.
func OnBoard(file, rank int) bool {
	return file >= MinCoord && file <= MaxCoord && rank >= MinCoord && rank <= MaxCoord
}

// index is only valid for on-board coordinates.
func index(file, rank int) int { return (rank-1)*8 + (file - 1) }

// coords is the inverse of index.
func coords(idx int) (file, rank int) { return idx%8 + 1, idx/8 + 1 }

// EmptyBoard returns a board with no pieces.
func EmptyBoard() *Board { return &Board{} }

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	for f := 1; f <= 8; f++ {
		b.squares[index(f, 1)] = Encode(backRank[f-1], White)
		b.squares[index(f, 2)] = Encode(Pawn, White)
		b.squares[index(f, 7)] = Encode(Pawn, Black)
		b.squares[index(f, 8)] = Encode(backRank[f-1], Black)
	}
	return b
}

// Get returns the occupant of (file, rank). Off-board coordinates read as Empty.
func (b *Board) Get(file, rank int) Square {
	if !OnBoard(file, rank) {
		return Empty
	}
	return b.squares[index(file, rank)]
}

// Set overwrites (file, rank) and returns the previous occupant.
// It panics on off-board coordinates.
func (b *Board) Set(file, rank int, s Square) Square {
	if !OnBoard(file, rank) {
		panic(fmt.Sprintf("raymg.Board.Set: square (%d,%d) is off the board", file, rank))
	}
	i := index(file, rank)
	prev := b.squares[i]
	b.squares[i] = s
	return prev
}

// Occupancy returns a bitboard of the squares holding pieces of color c.
func (b *Board) Occupancy(c Color) uint64 {
	var occ uint64
	for i, s := range b.squares {
		if !s.IsEmpty() && s.Color() == c {
			occ |= 1 << uint(i)
		}
	}
	return occ
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Each calls fn for every occupied square, a1 first and h8 last.
func (b *Board) Each(fn func(file, rank int, s Square)) {
	for i, s := range b.squares {
		if s.IsEmpty() {
			continue
		}
		f, r := coords(i)
		fn(f, r, s)
	}
}
