// Command mobility counts destination squares for every piece of a position
// and times repeated generation.
package main

import (
	"flag"
	"fmt"
	"math/bits"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"raychess/crosscheck"
	"raychess/game"
	"raychess/raymg"
)

// count returns the number of destinations per occupied square, keyed by
// square name, plus the totals for each color.
func count(b *raymg.Board) (map[string]int, [2]int, error) {
	per := make(map[string]int)
	var totals [2]int
	var firstErr error
	b.Each(func(file, rank int, s raymg.Square) {
		if firstErr != nil {
			return
		}
		d, err := raymg.ComputeLegalDestinations(b, file, rank)
		if err != nil {
			firstErr = err
			return
		}
		per[game.SquareName(file, rank)] = d.Count()
		totals[s.Color()] += d.Count()
	})
	return per, totals, firstErr
}

func main() {
	fen := flag.String("fen", raymg.FENStartPos, "FEN string (defaults to initial position)")
	repeat := flag.Int("repeat", 1, "Repeat generation N times and report aggregate (for steadier timings)")
	divide := flag.Bool("divide", false, "Print per-square destination counts")
	verify := flag.Bool("verify", false, "Compare slider destinations with dragontoothmg")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write a CPU profile into this directory during the run")
	flag.Parse()

	if *repeat <= 0 {
		fmt.Fprintln(os.Stderr, "-repeat must be > 0")
		os.Exit(2)
	}

	board, _, _, err := raymg.LoadFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		mm, err := crosscheck.Sliders(board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(2)
		}
		for _, m := range mm {
			fmt.Println(m)
		}
		if len(mm) > 0 {
			os.Exit(1)
		}
		fmt.Println("sliders match dragontoothmg")
	}

	if *divide {
		per, totals, err := count(board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "count: %v\n", err)
			os.Exit(2)
		}
		names := maps.Keys(per)
		slices.Sort(names)
		for _, n := range names {
			fmt.Printf("%s: %d\n", n, per[n])
		}
		fmt.Printf("White: %d\nBlack: %d\nTotal: %d\n", totals[raymg.White], totals[raymg.Black], totals[0]+totals[1])
		return
	}

	if *cpuProf != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProf), profile.Quiet).Stop()
	}

	// Timing loop
	var pieces, total int
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		_, totals, err := count(board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "count: %v\n", err)
			os.Exit(2)
		}
		total += totals[0] + totals[1]
		pieces += bits.OnesCount64(board.Occupancy(raymg.White) | board.Occupancy(raymg.Black))
	}
	elapsed := time.Since(start)
	pps := float64(pieces) / elapsed.Seconds()

	// Single line: Pieces Destinations Time Pieces/s
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, pieces, total, elapsed, pps)
}
