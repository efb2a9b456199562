package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"raychess/game"
	"raychess/render"
	"raychess/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("raychess", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fen := fs.String("fen", "", "FEN string (defaults to initial position)")
	tui := fs.Bool("tui", false, "Use the full-screen terminal UI")
	color := fs.Bool("color", true, "Use ANSI colors in the text board")
	unicode := fs.Bool("unicode", false, "Draw chess glyphs instead of letters in the text board")
	strict := fs.Bool("strict", true, "Only let the side to move select and move")
	logPath := fs.String("log", "", "Append a move log to this file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var logger *log.Logger
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "opening log: %v\n", err)
			return 2
		}
		defer f.Close()
		logger = log.New(f, "raychess ", log.LstdFlags)
	}

	s, err := game.NewSession(game.Config{FEN: *fen, Strict: *strict, Logger: logger})
	if err != nil {
		fmt.Fprintf(stderr, "ParseFEN error: %v\n", err)
		return 2
	}

	if *tui {
		err = ui.Run(s)
	} else {
		err = game.Run(s, stdin, stdout, render.Text{Color: *color, Unicode: *unicode})
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}
