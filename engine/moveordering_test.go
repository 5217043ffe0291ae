package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/matryer/is"
)

func moveStrings(moves []dragontoothmg.Move) []string {
	out := make([]string, len(moves))
	for i := range moves {
		out[i] = moves[i].String()
	}
	return out
}

func TestOrderMovesIsStableForEqualScores(t *testing.T) {
	is := is.New(t)
	pos := mustPosition(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	generated := pos.LegalMoves()
	want := moveStrings(generated)

	ordered := NewHeuristics().OrderMoves(pos, generated, 0)
	is.Equal(moveStrings(ordered), want)
}

func TestOrderMovesMVVLVA(t *testing.T) {
	is := is.New(t)
	// both the pawn and the queen can take the rook
	pos := mustPosition(t, "4k3/8/8/3r4/4P3/8/3Q4/4K3 w - - 0 1")
	h := NewHeuristics()
	ordered := moveStrings(h.OrderMoves(pos, pos.LegalMoves(), 0))
	is.Equal(ordered[0], "e4d5")
	is.Equal(ordered[1], "d2d5")

	pawnTakesRook := mustMove(t, "e4d5")
	queenTakesRook := mustMove(t, "d2d5")
	is.Equal(h.scoreMove(pos, pawnTakesRook, 0), int32(10000+100*500-100))
	is.Equal(h.scoreMove(pos, queenTakesRook, 0), int32(10000+100*500-900))
}

func TestOrderMovesKillersAndHistory(t *testing.T) {
	is := is.New(t)
	pos := mustPosition(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	h := NewHeuristics()
	h.InsertKiller(mustMove(t, "g1f3"), 2)
	h.AddHistory(dragontoothmg.Pawn, 28, 4)

	atKillerPly := moveStrings(h.OrderMoves(pos, pos.LegalMoves(), 2))
	is.Equal(atKillerPly[0], "g1f3")
	is.Equal(atKillerPly[1], "e2e4")
	is.Equal(len(atKillerPly), 20)

	elsewhere := moveStrings(h.OrderMoves(pos, pos.LegalMoves(), 0))
	is.Equal(elsewhere[0], "e2e4")

	quiet := mustMove(t, "e2e4")
	is.Equal(h.scoreMove(pos, quiet, 0), int32(1000+16))
	is.Equal(h.scoreMove(pos, mustMove(t, "g1f3"), 2), int32(9000))
}

func TestOrderMovesKeepsTheMoveSet(t *testing.T) {
	is := is.New(t)
	pos := mustPosition(t, kiwipeteFEN)
	h := NewHeuristics()
	h.InsertKiller(mustMove(t, "a2a3"), 0)

	want := map[string]bool{}
	for _, m := range moveStrings(pos.LegalMoves()) {
		want[m] = true
	}
	ordered := moveStrings(h.OrderMoves(pos, pos.LegalMoves(), 0))
	is.Equal(len(ordered), len(want))
	for _, m := range ordered {
		is.True(want[m])
	}
}

func TestOrderCapturesDropsLosingExchanges(t *testing.T) {
	is := is.New(t)
	h := NewHeuristics()

	defended := mustPosition(t, "4k3/8/4p3/3p4/8/8/3Q4/4K3 w - - 0 1")
	is.Equal(len(h.OrderCaptures(defended, defended.LegalMoves(), 0)), 0)

	loose := mustPosition(t, "4k3/8/8/3p4/8/8/3Q4/4K3 w - - 0 1")
	captures := moveStrings(h.OrderCaptures(loose, loose.LegalMoves(), 0))
	is.Equal(captures, []string{"d2d5"})

	enPassant := mustPosition(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	captures = moveStrings(h.OrderCaptures(enPassant, enPassant.LegalMoves(), 0))
	is.Equal(captures, []string{"e5d6"})
}
