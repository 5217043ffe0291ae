package engine

import (
	"strings"
	"testing"
	"unicode"

	"github.com/dylhunn/dragontoothmg"

	"middlegame/rules"
)

const (
	kiwipeteFEN    = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	italianFEN     = "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"
	hangingQueen   = "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1"
	backRankMate   = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	stalemateFEN   = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	foolsMateFEN   = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	singleReplyFEN = "k7/8/1KQ5/8/8/8/8/8 b - - 0 1"
	defendedPawn   = "4k3/8/4p3/3p4/8/8/8/3QK3 w - - 0 1"
	loosePawn      = "4k3/8/8/3p4/8/8/8/3QK3 w - - 0 1"
	loneQueen      = "4k3/8/8/8/8/8/8/3QK3 w - - 0 1"
)

var _ Position = (*rules.Position)(nil)

func mustPosition(t testing.TB, fen string) *rules.Position {
	t.Helper()
	pos, err := rules.NewPosition(fen)
	if err != nil {
		t.Fatalf("NewPosition(%q): %v", fen, err)
	}
	return pos
}

func mustMove(t testing.TB, uci string) dragontoothmg.Move {
	t.Helper()
	m, err := dragontoothmg.ParseMove(uci)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", uci, err)
	}
	return m
}

// mirrorFEN flips the board across the horizontal axis and swaps colours, so
// the result is the same position seen from the other side.
func mirrorFEN(fen string) string {
	fields := strings.Fields(fen)

	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))

	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}

	if fields[2] != "-" {
		var upper, lower strings.Builder
		for _, c := range swapCase(fields[2]) {
			if unicode.IsUpper(c) {
				upper.WriteRune(c)
			} else {
				lower.WriteRune(c)
			}
		}
		fields[2] = upper.String() + lower.String()
	}

	if fields[3] != "-" {
		rank := fields[3][1]
		fields[3] = string([]byte{fields[3][0], '1' + '8' - rank})
	}
	return strings.Join(fields, " ")
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}
