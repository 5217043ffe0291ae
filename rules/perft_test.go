package rules

import (
	"testing"

	"github.com/matryer/is"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		nodes uint64
	}{
		{StartFEN, 1, 20},
		{StartFEN, 2, 400},
		{StartFEN, 3, 8902},
		{kiwipeteFEN, 1, 48},
		{kiwipeteFEN, 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, tt := range tests {
		is := is.New(t)
		pos := mustPosition(t, tt.fen)
		fen := pos.FEN()
		is.Equal(pos.Perft(tt.depth), tt.nodes)
		is.Equal(pos.FEN(), fen)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	is := is.New(t)
	pos := mustPosition(t, kiwipeteFEN)
	div := pos.PerftDivide(2)
	is.Equal(len(div), 48)

	var sum uint64
	for _, n := range div {
		sum += n
	}
	is.Equal(sum, uint64(2039))
}

func benchPerft(b *testing.B, fen string, depth int) {
	pos := mustPosition(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.Perft(depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, StartFEN, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipeteFEN, 3)
}
