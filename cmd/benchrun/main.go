// Command benchrun runs the bench/ package and a set of mobility timings.
//
// Usage: go run ./cmd/benchrun
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// mobilityRuns are the positions timed through cmd/mobility.
var mobilityRuns = []struct {
	label, fen string
	repeat     string
}{
	{"Initial", "", "10000"},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", "10000"},
	{"Pos6", "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10", "10000"},
}

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

// mobilityArgs builds the go run invocation for one timed position.
func mobilityArgs(label, fen, repeat string) []string {
	args := []string{"run", "./cmd/mobility", "-repeat", repeat, "-label", label}
	if fen != "" {
		args = append(args, "-fen", fen)
	}
	return args
}

func main() {
	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nMobility Performance:")
	fmt.Println("TEST \t\tPieces \t\tDestinations \tTime \tPieces/s")
	for _, r := range mobilityRuns {
		run("go", mobilityArgs(r.label, r.fen, r.repeat)...)
	}
}
