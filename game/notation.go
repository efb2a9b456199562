package game

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"

	"raychess/raymg"
)

// ErrInvalidSquare is returned for input that is not [a-h][1-8].
var ErrInvalidSquare = errors.New("invalid square")

// ParseSquare converts two-character algebraic input such as "e2" into a file
// and rank in [1,8]. Upper-case files are accepted.
func ParseSquare(s string) (file, rank int, err error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("%w %q: want [a-h][1-8]", ErrInvalidSquare, s)
	}
	f, r := s[0], s[1]
	switch {
	case f >= 'a' && f <= 'h':
		file = int(f-'a') + 1
	case f >= 'A' && f <= 'H':
		file = int(f-'A') + 1
	default:
		return 0, 0, fmt.Errorf("%w %q: file must be a-h", ErrInvalidSquare, s)
	}
	if r < '1' || r > '8' {
		return 0, 0, fmt.Errorf("%w %q: rank must be 1-8", ErrInvalidSquare, s)
	}
	return file, int(r-'1') + 1, nil
}

// SquareName returns the algebraic name of (file, rank), e.g. "e2".
func SquareName(file, rank int) string {
	if !raymg.OnBoard(file, rank) {
		return fmt.Sprintf("(%d,%d)", file, rank)
	}
	return chess.NewSquare(chess.File(file-1), chess.Rank(rank-1)).String()
}
