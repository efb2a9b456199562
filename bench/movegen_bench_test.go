package bench

import (
	"testing"

	"raychess/raymg"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func benchComputeLegalDestinations(b *testing.B, fen string) {
	board, _, _, err := raymg.LoadFEN(fen)
	if err != nil {
		b.Fatalf("LoadFEN: %v", err)
	}
	type origin struct{ file, rank int }
	var origins []origin
	board.Each(func(file, rank int, _ raymg.Square) {
		origins = append(origins, origin{file, rank})
	})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, o := range origins {
			if _, err := raymg.ComputeLegalDestinations(board, o.file, o.rank); err != nil {
				b.Fatalf("ComputeLegalDestinations: %v", err)
			}
		}
	}
}

func BenchmarkComputeLegalDestinations_Initial(b *testing.B) {
	benchComputeLegalDestinations(b, raymg.FENStartPos)
}

func BenchmarkComputeLegalDestinations_Kiwipete(b *testing.B) {
	benchComputeLegalDestinations(b, kiwipete)
}

func BenchmarkComputeLegalDestinations_Pos6(b *testing.B) {
	benchComputeLegalDestinations(b, "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10")
}

func BenchmarkScan(b *testing.B) {
	board, _, _, err := raymg.LoadFEN(kiwipete)
	if err != nil {
		b.Fatalf("LoadFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = raymg.Scan(board, 6, 3, raymg.White)
	}
}

func BenchmarkApplyMove_Initial(b *testing.B) {
	start := raymg.NewBoard()
	d, err := raymg.ComputeLegalDestinations(start, 7, 1)
	if err != nil {
		b.Fatalf("ComputeLegalDestinations: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := start.Clone()
		if _, err := raymg.ApplyMove(board, d, 7, 1, 6, 3); err != nil {
			b.Fatalf("ApplyMove: %v", err)
		}
	}
}
