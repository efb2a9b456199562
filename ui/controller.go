// Package ui is the tview front end: click a piece to see where it can go,
// click a highlighted square to move it.
package ui

import (
	"fmt"

	"raychess/game"
	"raychess/raymg"
)

// Controller turns square clicks into session calls. It holds at most one
// selection, and the selection is dropped after every board change so a stale
// bitmap is never reused.
type Controller struct {
	s   *game.Session
	sel *game.Selection
	msg string
}

// NewController wraps a session.
func NewController(s *game.Session) *Controller { return &Controller{s: s} }

// Selection returns the current selection, or nil.
func (c *Controller) Selection() *game.Selection { return c.sel }

// Message returns the outcome of the last click.
func (c *Controller) Message() string { return c.msg }

// Session returns the wrapped session.
func (c *Controller) Session() *game.Session { return c.s }

// Click handles a click on (file, rank).
func (c *Controller) Click(file, rank int) {
	if c.sel == nil {
		c.selectSquare(file, rank)
		return
	}
	sel := c.sel
	if file == sel.File && rank == sel.Rank {
		c.sel = nil
		c.msg = "selection cleared"
		return
	}
	if !sel.Dest.Has(file, rank) {
		target := c.s.Board.Get(file, rank)
		if !target.IsEmpty() && target.Color() == c.s.Board.Get(sel.File, sel.Rank).Color() {
			c.selectSquare(file, rank)
			return
		}
	}
	captured, err := c.s.Move(sel.Dest, sel.File, sel.Rank, file, rank)
	if err != nil {
		c.msg = err.Error()
		return
	}
	c.sel = nil
	c.msg = fmt.Sprintf("%s-%s", game.SquareName(sel.File, sel.Rank), game.SquareName(file, rank))
	if !captured.IsEmpty() {
		c.msg += fmt.Sprintf(", %s overwritten", captured)
	}
}

func (c *Controller) selectSquare(file, rank int) {
	d, err := c.s.Select(file, rank)
	if err != nil {
		c.sel = nil
		c.msg = err.Error()
		return
	}
	if d.Empty() {
		c.sel = nil
		c.msg = game.SquareName(file, rank) + " has no legal moves"
		return
	}
	c.sel = &game.Selection{File: file, Rank: rank, Dest: d}
	c.msg = fmt.Sprintf("%s selected, %d destinations", game.SquareName(file, rank), d.Count())
}

// Status is the text for the side panel.
func (c *Controller) Status() string {
	return fmt.Sprintf("%s to move\nmove %d\n\n%s\n\n%s", c.s.Active, c.s.MoveNumber, c.msg, c.s.FEN())
}

// cellAt maps a table cell to board coordinates; row 0 is rank 8.
func cellAt(row, col int) (file, rank int) { return col + 1, raymg.MaxCoord - row }
