package game

import (
	"errors"
	"fmt"
	"log"

	"raychess/raymg"
)

// ErrWrongSide is returned when a strict session is asked to move a piece that
// does not belong to the side to move.
var ErrWrongSide = errors.New("piece belongs to the other side")

// Config holds the options of a session.
type Config struct {
	// FEN is the starting position; empty means the standard start.
	FEN string
	// Strict rejects selecting or moving the opponent's pieces.
	Strict bool
	// Logger receives one line per applied move and per rejected request.
	// nil disables logging.
	Logger *log.Logger
}

// Played records one applied move.
type Played struct {
	Number             int
	FromFile, FromRank int
	ToFile, ToRank     int
	Piece              raymg.Square
	Captured           raymg.Square
}

func (p Played) String() string {
	s := fmt.Sprintf("%d. %s %s-%s", p.Number, p.Piece, SquareName(p.FromFile, p.FromRank), SquareName(p.ToFile, p.ToRank))
	if !p.Captured.IsEmpty() {
		s += " (" + p.Captured.String() + " overwritten)"
	}
	return s
}

// Session owns the board and the turn state of one game.
type Session struct {
	Board *raymg.Board
	// MoveNumber counts half-moves and starts at 1.
	MoveNumber int
	// Active is the side to move.
	Active raymg.Color

	cfg     Config
	history []Played
}

// NewSession sets up a session from cfg.FEN, or the start position.
func NewSession(cfg Config) (*Session, error) {
	s := &Session{cfg: cfg, MoveNumber: 1, Active: raymg.White}
	if cfg.FEN == "" {
		s.Board = raymg.NewBoard()
		return s, nil
	}
	b, side, fullmove, err := raymg.LoadFEN(cfg.FEN)
	if err != nil {
		return nil, err
	}
	s.Board = b
	s.Active = side
	s.MoveNumber = 2*fullmove - 1
	if side == raymg.Black {
		s.MoveNumber++
	}
	return s, nil
}

// Strict reports whether side-to-move is enforced.
func (s *Session) Strict() bool { return s.cfg.Strict }

// Select computes a fresh destination bitmap for the piece on (file, rank).
func (s *Session) Select(file, rank int) (raymg.Destinations, error) {
	d, err := raymg.ComputeLegalDestinations(s.Board, file, rank)
	if err != nil {
		s.logf("select %s: %v", SquareName(file, rank), err)
		return 0, fmt.Errorf("select %s: %w", SquareName(file, rank), err)
	}
	if s.cfg.Strict && s.Board.Get(file, rank).Color() != s.Active {
		s.logf("select %s: %v", SquareName(file, rank), ErrWrongSide)
		return 0, fmt.Errorf("select %s: %w", SquareName(file, rank), ErrWrongSide)
	}
	return d, nil
}

// Move applies a move using a bitmap obtained from Select on the current
// board, then hands the turn to the other side. It returns whatever was on the
// destination before the move.
func (s *Session) Move(dst raymg.Destinations, fromFile, fromRank, toFile, toRank int) (raymg.Square, error) {
	piece := s.Board.Get(fromFile, fromRank)
	if s.cfg.Strict && !piece.IsEmpty() && piece.Color() != s.Active {
		s.logf("move %s: %v", SquareName(fromFile, fromRank), ErrWrongSide)
		return raymg.Empty, fmt.Errorf("move %s: %w", SquareName(fromFile, fromRank), ErrWrongSide)
	}
	captured, err := raymg.ApplyMove(s.Board, dst, fromFile, fromRank, toFile, toRank)
	if err != nil {
		s.logf("move %s-%s: %v", SquareName(fromFile, fromRank), SquareName(toFile, toRank), err)
		return raymg.Empty, fmt.Errorf("move %s-%s: %w", SquareName(fromFile, fromRank), SquareName(toFile, toRank), err)
	}
	p := Played{
		Number:   s.MoveNumber,
		FromFile: fromFile,
		FromRank: fromRank,
		ToFile:   toFile,
		ToRank:   toRank,
		Piece:    piece,
		Captured: captured,
	}
	s.history = append(s.history, p)
	s.MoveNumber++
	s.Active = s.Active.Opponent()
	s.logf("%s", p)
	return captured, nil
}

// History returns the applied moves, oldest first.
func (s *Session) History() []Played {
	out := make([]Played, len(s.history))
	copy(out, s.history)
	return out
}

// FEN returns the current position. The fullmove field is derived from the
// half-move counter.
func (s *Session) FEN() string {
	return s.Board.FEN(s.Active, (s.MoveNumber+1)/2)
}

func (s *Session) logf(format string, args ...any) {
	if s.cfg.Logger != nil {
		s.cfg.Logger.Printf(format, args...)
	}
}
