package render

import (
	"bytes"
	"strings"
	"testing"

	"raychess/game"
	"raychess/raymg"
)

func TestLetter(t *testing.T) {
	cases := map[raymg.Square]byte{
		raymg.Empty:                             ' ',
		raymg.Encode(raymg.Knight, raymg.White): 'N',
		raymg.Encode(raymg.Knight, raymg.Black): 'n',
		raymg.Encode(raymg.King, raymg.Black):   'k',
		raymg.Encode(raymg.Pawn, raymg.White):   'P',
	}
	for s, want := range cases {
		if got := Letter(s); got != want {
			t.Fatalf("Letter(%v): got %q want %q", s, got, want)
		}
	}
}

func TestGlyph(t *testing.T) {
	if got := Glyph(raymg.Encode(raymg.King, raymg.White)); got != "♔" {
		t.Fatalf("white king glyph: got %q", got)
	}
	if got := Glyph(raymg.Encode(raymg.Pawn, raymg.Black)); got != "♟" {
		t.Fatalf("black pawn glyph: got %q", got)
	}
	if got := Glyph(raymg.Empty); got != " " {
		t.Fatalf("empty glyph: got %q", got)
	}
}

func TestText_PlainStartPosition(t *testing.T) {
	var buf bytes.Buffer
	if err := (Text{}).Render(&buf, raymg.NewBoard(), nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if got, want := lines[0], " r  n  b  q  k  b  n  r  8"; got != want {
		t.Fatalf("rank 8: got %q want %q", got, want)
	}
	if got, want := lines[7], " R  N  B  Q  K  B  N  R  1"; got != want {
		t.Fatalf("rank 1: got %q want %q", got, want)
	}
	if got, want := lines[8], " A  B  C  D  E  F  G  H"; got != want {
		t.Fatalf("footer: got %q want %q", got, want)
	}
}

func TestText_PlainHighlightsSelection(t *testing.T) {
	b := raymg.NewBoard()
	d, err := raymg.ComputeLegalDestinations(b, 5, 2)
	if err != nil {
		t.Fatalf("ComputeLegalDestinations: %v", err)
	}
	var buf bytes.Buffer
	if err := (Text{}).Render(&buf, b, &game.Selection{File: 5, Rank: 2, Dest: d}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if n := strings.Count(out, "["); n != 3 {
		t.Fatalf("expected origin plus two destinations highlighted, got %d\n%s", n, out)
	}
	lines := strings.Split(out, "\n")
	if got, want := lines[4], strings.Repeat(" ", 12)+"[ ]"+strings.Repeat(" ", 10)+"4"; got != want {
		t.Fatalf("rank 4: got %q want %q", got, want)
	}
}

func TestText_ColorUsesANSI(t *testing.T) {
	var buf bytes.Buffer
	if err := (Text{Color: true, Unicode: true}).Render(&buf, raymg.NewBoard(), nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\033[40;") || !strings.Contains(out, "\033[47;") {
		t.Fatalf("missing square backgrounds")
	}
	if !strings.Contains(out, "♜") || !strings.Contains(out, "♖") {
		t.Fatalf("missing rook glyphs")
	}
	if strings.Contains(out, "\033[43;") {
		t.Fatalf("highlight without a selection")
	}
}
