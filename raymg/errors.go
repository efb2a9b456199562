package raymg

import "errors"

var (
	// ErrOffBoard is returned for a file or rank outside [1,8].
	ErrOffBoard = errors.New("square is off the board")
	// ErrEmptyOrigin is returned when a move is requested for an empty square.
	ErrEmptyOrigin = errors.New("no piece on origin square")
	// ErrIllegalDestination is returned when the destination is not in the bitmap.
	ErrIllegalDestination = errors.New("destination is not reachable")
)
