package engine

import (
	"testing"

	"github.com/matryer/is"
)

func TestEvaluateStartPosition(t *testing.T) {
	is := is.New(t)
	pos := mustPosition(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	is.Equal(Evaluate(pos), int32(0))
	is.Equal(evaluateWhite(pos), int32(0))
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	is := is.New(t)
	// queen on d1 sits on a -5 square, both kings on 0 squares
	white := mustPosition(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	black := mustPosition(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	is.Equal(evaluateWhite(white), int32(895))
	is.Equal(Evaluate(white), int32(895))
	is.Equal(Evaluate(black), int32(-895))
}

func TestEvaluatePieceSquareOrientation(t *testing.T) {
	is := is.New(t)
	// a white pawn on e4 and a black pawn on e5 both earn the central bonus
	pos := mustPosition(t, "4k3/8/8/4p3/4P3/8/8/4K3 w - - 0 1")
	is.Equal(evaluateWhite(pos), int32(0))

	advanced := mustPosition(t, "4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	is.Equal(evaluateWhite(advanced), int32(100+50))
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	for _, fen := range []string{
		kiwipeteFEN,
		italianFEN,
		hangingQueen,
		backRankMate,
		"r1bq1rk1/pp2bppp/2n1pn2/3p4/2PP4/2N1PN2/PP3PPP/R2QKB1R w KQ d6 0 8",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		t.Run(fen, func(t *testing.T) {
			is := is.New(t)
			pos := mustPosition(t, fen)
			mirror := mustPosition(t, mirrorFEN(fen))
			is.Equal(evaluateWhite(mirror), -evaluateWhite(pos))
			is.Equal(Evaluate(mirror), Evaluate(pos))
		})
	}
}
