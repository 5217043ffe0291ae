package engine

import (
	"cmp"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

type move struct {
	move  dragontoothmg.Move
	score int32
}

/*
Move ordering offsets:
  - Captures come first, most valuable victim taken by the least valuable attacker on top.
  - Quiet killers from this ply follow, ahead of any other quiet move without a large history.
  - Remaining quiet moves are ranked by their history score.
*/
const (
	captureOffset int32 = 10000
	killerOffset  int32 = 9000
	quietOffset   int32 = 1000
)

// scoreMove rates a single move for ordering at the given ply.
func (h *Heuristics) scoreMove(pos Position, m dragontoothmg.Move, ply int) int32 {
	piece := pos.MovedPiece(m)
	if victim := pos.CapturedPiece(m); victim != dragontoothmg.Nothing {
		return captureOffset + 100*PieceValue[victim] - PieceValue[piece]
	}
	if h.IsKiller(m, ply) {
		return killerOffset
	}
	return quietOffset + h.HistoryScore(piece, m.To())
}

// OrderMoves sorts moves in place, best first. Equal scores keep their
// generation order.
func (h *Heuristics) OrderMoves(pos Position, moves []dragontoothmg.Move, ply int) []dragontoothmg.Move {
	scored := make([]move, len(moves))
	for i, m := range moves {
		scored[i] = move{move: m, score: h.scoreMove(pos, m, ply)}
	}
	slices.SortStableFunc(scored, func(a, b move) int {
		return cmp.Compare(b.score, a.score)
	})
	for i := range scored {
		moves[i] = scored[i].move
	}
	return moves
}

// OrderCaptures keeps the captures of moves that do not lose material by
// static exchange and orders them like OrderMoves. moves is left untouched.
func (h *Heuristics) OrderCaptures(pos Position, moves []dragontoothmg.Move, ply int) []dragontoothmg.Move {
	captures := make([]dragontoothmg.Move, 0, len(moves))
	for _, m := range moves {
		if pos.CapturedPiece(m) != dragontoothmg.Nothing && pos.SEE(m) >= 0 {
			captures = append(captures, m)
		}
	}
	return h.OrderMoves(pos, captures, ply)
}
