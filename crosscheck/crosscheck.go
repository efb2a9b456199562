// Package crosscheck compares ray-scan destination bitmaps with the magic
// bitboard slider attacks of dragontoothmg.
package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"raychess/raymg"
)

// Mismatch describes a piece whose destinations differ from the reference.
type Mismatch struct {
	File, Rank int
	Piece      raymg.Square
	Got, Want  raymg.Destinations
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%v on (%d,%d): got %#016x want %#016x (missing %#016x, extra %#016x)",
		m.Piece, m.File, m.Rank, uint64(m.Got), uint64(m.Want), uint64(m.Want&^m.Got), uint64(m.Got&^m.Want))
}

// Reference returns the dragontoothmg destinations for a rook, bishop or queen
// standing on square index sq with the given occupancy. ok is false for other
// kinds.
func Reference(kind raymg.Kind, sq uint8, all, own uint64) (d raymg.Destinations, ok bool) {
	var att uint64
	switch kind {
	case raymg.Rook:
		att = dragontoothmg.CalculateRookMoveBitboard(sq, all)
	case raymg.Bishop:
		att = dragontoothmg.CalculateBishopMoveBitboard(sq, all)
	case raymg.Queen:
		att = dragontoothmg.CalculateRookMoveBitboard(sq, all) | dragontoothmg.CalculateBishopMoveBitboard(sq, all)
	default:
		return 0, false
	}
	return raymg.Destinations(att &^ own), true
}

// Sliders checks every rook, bishop and queen on b. The board is handed to
// dragontoothmg through FEN, so the occupancy it sees is checked as well.
func Sliders(b *raymg.Board) ([]Mismatch, error) {
	ref := dragontoothmg.ParseFen(b.FEN(raymg.White, 1))
	if ref.White.All != b.Occupancy(raymg.White) || ref.Black.All != b.Occupancy(raymg.Black) {
		return nil, fmt.Errorf("crosscheck: occupancy differs after FEN export: white %#x/%#x black %#x/%#x",
			b.Occupancy(raymg.White), ref.White.All, b.Occupancy(raymg.Black), ref.Black.All)
	}
	all := ref.White.All | ref.Black.All

	var out []Mismatch
	var firstErr error
	b.Each(func(file, rank int, s raymg.Square) {
		if firstErr != nil {
			return
		}
		sq := uint8((rank-1)*8 + file - 1)
		own := ref.White.All
		if s.Color() == raymg.Black {
			own = ref.Black.All
		}
		want, ok := Reference(s.Kind(), sq, all, own)
		if !ok {
			return
		}
		got, err := raymg.ComputeLegalDestinations(b, file, rank)
		if err != nil {
			firstErr = err
			return
		}
		if got != want {
			out = append(out, Mismatch{File: file, Rank: rank, Piece: s, Got: got, Want: want})
		}
	})
	return out, firstErr
}
