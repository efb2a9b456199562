package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"raychess/game"
	"raychess/raymg"
	"raychess/render"
)

var (
	lightSquare = tcell.NewRGBColor(240, 217, 181)
	darkSquare  = tcell.NewRGBColor(181, 136, 99)
	litSquare   = tcell.ColorYellow
)

// Run starts the terminal UI on s and blocks until the user quits with
// Escape or q.
func Run(s *game.Session) error {
	app := tview.NewApplication()
	c := NewController(s)

	boardTable := tview.NewTable()
	boardTable.SetSelectable(true, true)
	boardTable.SetBorder(true)
	boardTable.SetTitleAlign(tview.AlignLeft)
	boardTable.SetTitle(" raychess ")

	statusBox := tview.NewTextView()
	statusBox.SetBorder(true)
	statusBox.SetTitle(" Status ")

	flex := tview.NewFlex().
		AddItem(boardTable, 0, 1, true).
		AddItem(statusBox, 50, 1, false)

	updateBoard := func() {
		sel := c.Selection()
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				file, rank := cellAt(row, col)
				sq := s.Board.Get(file, rank)

				cell := tview.NewTableCell(" " + render.Glyph(sq) + " ")
				cell.SetAlign(tview.AlignCenter)
				cell.SetBackgroundColor(squareColor(file, rank, sel))
				cell.SetTextColor(tcell.ColorBlack)
				boardTable.SetCell(row, col, cell)
			}
			boardTable.SetCell(row, 8, tview.NewTableCell(string(rune('0'+raymg.MaxCoord-row))).SetSelectable(false))
		}
		for col := 0; col < 8; col++ {
			boardTable.SetCell(8, col, tview.NewTableCell(string(rune('a'+col))).SetAlign(tview.AlignCenter).SetSelectable(false))
		}
		statusBox.SetText(c.Status())
	}

	boardTable.SetSelectedFunc(func(row, col int) {
		if row > 7 || col > 7 {
			return
		}
		c.Click(cellAt(row, col))
		updateBoard()
	})
	boardTable.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			app.Stop()
		}
	})
	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return ev
	})

	updateBoard()
	return app.SetRoot(flex, true).SetFocus(boardTable).Run()
}

func squareColor(file, rank int, sel *game.Selection) tcell.Color {
	if sel != nil && ((file == sel.File && rank == sel.Rank) || sel.Dest.Has(file, rank)) {
		return litSquare
	}
	if (file+rank)%2 == 0 {
		return darkSquare
	}
	return lightSquare
}
