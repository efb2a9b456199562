package game

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"raychess/raymg"
)

type recordingRenderer struct {
	selections []*Selection
}

func (r *recordingRenderer) Render(w io.Writer, b *raymg.Board, sel *Selection) error {
	r.selections = append(r.selections, sel)
	_, err := io.WriteString(w, "<board>\n")
	return err
}

func runScript(t *testing.T, s *Session, script string) (string, *recordingRenderer) {
	t.Helper()
	var out bytes.Buffer
	r := &recordingRenderer{}
	if err := Run(s, strings.NewReader(script), &out, r); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), r
}

func TestRun_PlaysMovesUntilEOF(t *testing.T) {
	s := newSession(t, Config{Strict: true})
	out, r := runScript(t, s, "e2 e4\ne7 e5\n")
	if s.MoveNumber != 3 {
		t.Fatalf("move number: got %d want 3\n%s", s.MoveNumber, out)
	}
	if s.Board.Get(5, 4) != raymg.Encode(raymg.Pawn, raymg.White) || s.Board.Get(5, 5) != raymg.Encode(raymg.Pawn, raymg.Black) {
		t.Fatalf("pawns not on e4/e5\n%s", out)
	}
	var highlighted int
	for _, sel := range r.selections {
		if sel != nil {
			highlighted++
			if sel.Dest.Count() != 2 {
				t.Fatalf("selection %v: got %d destinations want 2", sel, sel.Dest.Count())
			}
		}
	}
	if highlighted != 2 {
		t.Fatalf("highlighted renders: got %d want 2", highlighted)
	}
}

func TestRun_RepromptsOnIllegalDestination(t *testing.T) {
	s := newSession(t, Config{})
	out, _ := runScript(t, s, "b1 d2 b3 a3 quit")
	if !strings.Contains(out, "Make a valid move: ") {
		t.Fatalf("no re-prompt:\n%s", out)
	}
	if s.Board.Get(1, 3) != raymg.Encode(raymg.Knight, raymg.White) {
		t.Fatalf("knight not on a3:\n%s", out)
	}
	if s.MoveNumber != 2 {
		t.Fatalf("move number: got %d want 2", s.MoveNumber)
	}
}

func TestRun_RejectsBadSelections(t *testing.T) {
	s := newSession(t, Config{Strict: true})
	out, _ := runScript(t, s, "z9 d4 e7 a1 quit")
	for _, want := range []string{
		"invalid square",
		"no piece on origin square",
		"piece belongs to the other side",
		"a1 has no legal moves.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output lacks %q:\n%s", want, out)
		}
	}
	if s.MoveNumber != 1 {
		t.Fatalf("nothing should have moved")
	}
}

func TestRun_Commands(t *testing.T) {
	s := newSession(t, Config{})
	out, _ := runScript(t, s, "g1 back g1 f3 moves fen quit")
	if !strings.Contains(out, "1. white knight g1-f3") {
		t.Fatalf("moves listing missing:\n%s", out)
	}
	if !strings.Contains(out, "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b - - 0 1") {
		t.Fatalf("fen missing:\n%s", out)
	}
}
