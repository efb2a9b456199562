package raymg

import "math/bits"

// Destinations is a per-square bitmap of the squares a selected piece may move
// to. Bit i is the square at board index i (a1 = 0, h8 = 63).
//
// A bitmap describes the board it was computed from; any later change to that
// board makes it stale.
type Destinations uint64

const allSquares Destinations = ^Destinations(0)

// Has reports whether (file, rank) is marked. Off-board squares never are.
func (d Destinations) Has(file, rank int) bool {
	if !OnBoard(file, rank) {
		return false
	}
	return d&(1<<uint(index(file, rank))) != 0
}

// Count returns the number of marked squares.
func (d Destinations) Count() int { return bits.OnesCount64(uint64(d)) }

// Empty reports whether no square is marked.
func (d Destinations) Empty() bool { return d == 0 }

// Squares returns the marked squares as (file, rank) pairs, a1 first.
func (d Destinations) Squares() [][2]int {
	out := make([][2]int, 0, d.Count())
	for m := uint64(d); m != 0; m &= m - 1 {
		f, r := coords(bits.TrailingZeros64(m))
		out = append(out, [2]int{f, r})
	}
	return out
}

// Assemble combines a template and an obstruction scan taken at (file, rank)
// into the destination bitmap. Every square lying beyond the scanned distance
// on one of the eight rays is removed, then the template, centered on the
// origin, selects what remains. Squares off those rays are untouched by the
// first step, which is what lets knights jump.
func Assemble(t Template, obs Obstruction, file, rank int) Destinations {
	d := allSquares
	for _, dir := range Directions {
		df, dr := dir.Step()
		step := obs[dir] + 1
		for f, r := file+df*step, rank+dr*step; OnBoard(f, r); f, r = f+df, r+dr {
			d &^= 1 << uint(index(f, r))
		}
	}

	var mask Destinations
	for i := 0; i < 64; i++ {
		f, r := coords(i)
		if t.At(f-file, r-rank) {
			mask |= 1 << uint(i)
		}
	}
	return d & mask
}

// ComputeLegalDestinations returns the squares the piece on (file, rank) may
// move to. Squares held by the mover's own side are never included. An empty
// result with a nil error means the piece has no moves.
func ComputeLegalDestinations(b *Board, file, rank int) (Destinations, error) {
	if !OnBoard(file, rank) {
		return 0, ErrOffBoard
	}
	s := b.Get(file, rank)
	if s.IsEmpty() {
		return 0, ErrEmptyOrigin
	}
	kind, color := Decode(s)
	obs := Scan(b, file, rank, color)
	d := Assemble(TemplateFor(kind, color), obs, file, rank)
	return d &^ Destinations(b.Occupancy(color)), nil
}
