package ui

import (
	"strings"
	"testing"

	"raychess/game"
	"raychess/raymg"
)

func newController(t *testing.T, cfg game.Config) *Controller {
	t.Helper()
	s, err := game.NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return NewController(s)
}

func TestController_SelectThenMove(t *testing.T) {
	c := newController(t, game.Config{Strict: true})
	c.Click(5, 2)
	sel := c.Selection()
	if sel == nil || sel.Dest.Count() != 2 {
		t.Fatalf("e2 selection: got %v", sel)
	}
	c.Click(5, 4)
	if c.Selection() != nil {
		t.Fatalf("selection kept after move")
	}
	if c.Session().Board.Get(5, 4) != raymg.Encode(raymg.Pawn, raymg.White) {
		t.Fatalf("pawn not on e4")
	}
	if c.Message() != "e2-e4" {
		t.Fatalf("message: got %q want %q", c.Message(), "e2-e4")
	}
	if !strings.HasPrefix(c.Status(), "black to move\nmove 2") {
		t.Fatalf("status: got %q", c.Status())
	}
}

func TestController_Reselect(t *testing.T) {
	c := newController(t, game.Config{})
	c.Click(2, 1)
	c.Click(7, 1)
	sel := c.Selection()
	if sel == nil || sel.File != 7 || sel.Rank != 1 {
		t.Fatalf("g1 reselect: got %v", sel)
	}
	c.Click(7, 1)
	if c.Selection() != nil {
		t.Fatalf("second click on origin should clear the selection")
	}
}

func TestController_Rejections(t *testing.T) {
	c := newController(t, game.Config{Strict: true})

	c.Click(4, 4)
	if c.Selection() != nil || !strings.Contains(c.Message(), "no piece") {
		t.Fatalf("empty square: sel %v msg %q", c.Selection(), c.Message())
	}
	c.Click(5, 7)
	if c.Selection() != nil || !strings.Contains(c.Message(), "other side") {
		t.Fatalf("black pawn on white's turn: sel %v msg %q", c.Selection(), c.Message())
	}
	c.Click(1, 1)
	if c.Selection() != nil || c.Message() != "a1 has no legal moves" {
		t.Fatalf("blocked rook: sel %v msg %q", c.Selection(), c.Message())
	}

	c.Click(5, 2)
	c.Click(5, 5)
	if c.Selection() == nil || !strings.Contains(c.Message(), "not reachable") {
		t.Fatalf("e2-e5: sel %v msg %q", c.Selection(), c.Message())
	}
	if c.Session().MoveNumber != 1 {
		t.Fatalf("move number: got %d want 1", c.Session().MoveNumber)
	}
}

func TestController_ReportsOverwrite(t *testing.T) {
	c := newController(t, game.Config{FEN: "4k3/8/8/8/8/8/4p3/4R1K1 w - - 0 1"})
	c.Click(5, 1)
	c.Click(5, 2)
	if !strings.HasSuffix(c.Message(), "black pawn overwritten") {
		t.Fatalf("message: got %q", c.Message())
	}
}

func TestCellAt(t *testing.T) {
	if f, r := cellAt(0, 0); f != 1 || r != 8 {
		t.Fatalf("cell (0,0): got (%d,%d) want (1,8)", f, r)
	}
	if f, r := cellAt(7, 7); f != 8 || r != 1 {
		t.Fatalf("cell (7,7): got (%d,%d) want (8,1)", f, r)
	}
}

func TestSquareColor(t *testing.T) {
	sel := &game.Selection{File: 5, Rank: 2, Dest: raymg.Destinations(1 << (3*8 + 4))}
	if squareColor(5, 4, sel) != litSquare || squareColor(5, 2, sel) != litSquare {
		t.Fatalf("origin and destination must be lit")
	}
	if squareColor(1, 1, nil) != darkSquare || squareColor(2, 1, nil) != lightSquare {
		t.Fatalf("a1 dark, b1 light")
	}
}
