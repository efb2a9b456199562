package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"raychess/raymg"
)

// Selection is a selected origin and its destination bitmap.
type Selection struct {
	File, Rank int
	Dest       raymg.Destinations
}

// Renderer draws a board, optionally highlighting a selection.
type Renderer interface {
	Render(w io.Writer, b *raymg.Board, sel *Selection) error
}

// Run drives the line-oriented turn loop: pick a square, see its
// destinations, pick a destination. It returns nil on "quit" or end of input.
//
// Besides squares the loop understands "fen", "moves" and "quit"; while
// choosing a destination "back" returns to square selection.
func Run(s *Session, in io.Reader, out io.Writer, r Renderer) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		if err := r.Render(out, s.Board, nil); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s to move (%d). Select square [a-h][1-8]: ", s.Active, s.MoveNumber)
		tok, ok := next()
		if !ok {
			return scanner.Err()
		}
		switch strings.ToLower(tok) {
		case "quit", "exit":
			return nil
		case "fen":
			fmt.Fprintln(out, s.FEN())
			continue
		case "moves":
			for _, p := range s.History() {
				fmt.Fprintln(out, p)
			}
			continue
		}

		file, rank, err := ParseSquare(tok)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		dst, err := s.Select(file, rank)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if dst.Empty() {
			fmt.Fprintf(out, "%s has no legal moves.\n", SquareName(file, rank))
			continue
		}
		if err := r.Render(out, s.Board, &Selection{File: file, Rank: rank, Dest: dst}); err != nil {
			return err
		}

		fmt.Fprint(out, "Make move [a-h][1-8]: ")
	dest:
		for {
			tok, ok := next()
			if !ok {
				return scanner.Err()
			}
			switch strings.ToLower(tok) {
			case "quit", "exit":
				return nil
			case "back":
				break dest
			}
			tf, tr, err := ParseSquare(tok)
			if err != nil {
				fmt.Fprintf(out, "%v\nMake a valid move: ", err)
				continue
			}
			captured, err := s.Move(dst, file, rank, tf, tr)
			switch {
			case errors.Is(err, raymg.ErrIllegalDestination):
				fmt.Fprint(out, "Make a valid move: ")
				continue
			case err != nil:
				return err
			}
			if !captured.IsEmpty() {
				fmt.Fprintf(out, "%s overwritten on %s\n", captured, SquareName(tf, tr))
			}
			break dest
		}
	}
}
