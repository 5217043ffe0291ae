package engine

import (
	"time"

	"github.com/dylhunn/dragontoothmg"
)

// Result is the outcome of the deepest completed iteration.
type Result struct {
	Move    dragontoothmg.Move
	Score   int32
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
}

// BestMove searches pos with iterative deepening up to maxDepth plies and
// returns the best root move of the last iteration. Root moves are ordered
// once and every one is searched with the full window; the first of equally
// scored moves wins. When the root has no legal move the result carries
// NullMove, with a draw score for stalemate and a mated score otherwise.
func (s *Searcher) BestMove(pos Position, maxDepth int) Result {
	start := time.Now()
	maxDepth = clamp(maxDepth, 1, MaxPly-1)
	s.stats = Stats{}

	rootMoves := pos.LegalMoves()
	if len(rootMoves) == 0 {
		score := DrawScore
		if pos.InCheck() {
			score = -(MateScore + int32(maxDepth))
		}
		s.log.Debug().Str("score", FormatScore(score, maxDepth)).Msg("no legal move at root")
		return Result{Move: NullMove, Score: score, Elapsed: time.Since(start)}
	}
	rootMoves = s.heur.OrderMoves(pos, rootMoves, 0)

	var result Result
	for depth := 1; depth <= maxDepth; depth++ {
		bestMove := NullMove
		bestScore := -Infinity

		for _, move := range rootMoves {
			unapplyFunc := pos.Apply(move)
			score := -s.alphabeta(pos, depth-1, -Infinity, Infinity, 1, false)
			unapplyFunc()

			if score > bestScore {
				bestScore = score
				bestMove = move
			}
		}

		result = Result{
			Move:    bestMove,
			Score:   bestScore,
			Depth:   depth,
			Nodes:   s.stats.Nodes + s.stats.QNodes,
			Elapsed: time.Since(start),
		}
		s.log.Debug().
			Int("depth", depth).
			Str("score", FormatScore(bestScore, depth)).
			Uint64("nodes", result.Nodes).
			Str("move", bestMove.String()).
			Dur("elapsed", result.Elapsed).
			Msg("iteration complete")
	}

	s.log.Debug().
		Object("stats", s.stats).
		Object("tt", s.tt.Stats()).
		Int("tt_used", s.tt.Len()).
		Msg("search finished")
	return result
}

// BestMove searches pos to maxDepth with a fresh Searcher and returns the
// chosen move, or NullMove if there is none.
func BestMove(pos Position, maxDepth int) dragontoothmg.Move {
	return NewSearcher().BestMove(pos, maxDepth).Move
}
