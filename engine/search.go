package engine

import (
	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// Infinity bounds every search window. It stays well above any mate
	// score so negation never overflows and mates never hit the sentinels.
	Infinity  int32 = 1_000_000
	MateScore int32 = 100_000
	DrawScore int32 = 0
)

// NullMoveReduction is the depth skipped by the null-move sub-search.
const NullMoveReduction = 3

// Searcher runs the search. It owns its transposition table, heuristics and
// statistics, and must not be used from more than one goroutine at a time.
type Searcher struct {
	tt       *TransTable
	heur     *Heuristics
	log      zerolog.Logger
	nullMove bool
	stats    Stats
}

type Option func(*Searcher)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Searcher) { s.log = l }
}

// WithTransTable shares tt with the searcher, e.g. across the moves of a game.
func WithTransTable(tt *TransTable) Option {
	return func(s *Searcher) { s.tt = tt }
}

func WithTTCapacity(capacity int) Option {
	return func(s *Searcher) { s.tt = NewTransTable(capacity) }
}

func WithHeuristics(h *Heuristics) Option {
	return func(s *Searcher) { s.heur = h }
}

// WithoutNullMove disables null-move pruning.
func WithoutNullMove() Option {
	return func(s *Searcher) { s.nullMove = false }
}

func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		log:      zerolog.Nop(),
		nullMove: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tt == nil {
		s.tt = NewTransTable(DefaultTTCapacity)
	}
	if s.heur == nil {
		s.heur = NewHeuristics()
	}
	return s
}

func (s *Searcher) TransTable() *TransTable { return s.tt }

func (s *Searcher) Heuristics() *Heuristics { return s.heur }

// Stats returns the counters of the last BestMove call.
func (s *Searcher) Stats() Stats { return s.stats }

// alphabeta is the negamax core. rootSide is true when the side to move at
// this node is the side to move at the root; only those nodes try a null
// move. Cutoffs fail hard and return beta.
func (s *Searcher) alphabeta(pos Position, depth int, alpha, beta int32, ply int, rootSide bool) int32 {
	s.stats.Nodes++

	moves := pos.LegalMoves()
	inCheck := pos.InCheck()
	if len(moves) == 0 {
		if inCheck {
			// mated: more remaining depth means a faster mate
			return -(MateScore + int32(depth))
		}
		return DrawScore
	}

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	/*
		TRANSPOSITION TABLE LOOKUP
	*/
	posHash := pos.Hash()
	if score, usable := s.tt.Probe(posHash, int8(depth), alpha, beta); usable {
		s.stats.TTCutoffs++
		return score
	}

	/*
		NULL MOVE PRUNING
		No zugzwang guard: positions where passing would help are misjudged.
	*/
	if s.nullMove && rootSide && depth >= NullMoveReduction && !inCheck {
		s.stats.NullMoveTries++
		unApplyfunc := pos.ApplyNull()
		score := -s.alphabeta(pos, depth-NullMoveReduction, -beta, -beta+1, ply+1, !rootSide)
		unApplyfunc()

		if score >= beta {
			s.stats.NullMoveCutoffs++
			return beta
		}
	}

	moves = s.heur.OrderMoves(pos, moves, ply)

	origAlpha := alpha
	bestScore := -Infinity
	for _, move := range moves {
		// classify before the move changes the board
		isQuiet := pos.CapturedPiece(move) == dragontoothmg.Nothing
		piece := pos.MovedPiece(move)

		unapplyFunc := pos.Apply(move)
		score := -s.alphabeta(pos, depth-1, -beta, -alpha, ply+1, !rootSide)
		unapplyFunc()

		if score > bestScore {
			bestScore = score
		}

		// Beta cutoff
		if bestScore >= beta {
			s.stats.BetaCutoffs++
			if isQuiet {
				s.heur.InsertKiller(move, ply)
				s.heur.AddHistory(piece, move.To(), depth)
			}
			s.tt.Store(posHash, int8(depth), beta, LowerBound)
			return beta
		}

		if bestScore > alpha {
			alpha = bestScore
		}
	}

	bound := UpperBound
	if bestScore > origAlpha {
		bound = Exact
	}
	s.tt.Store(posHash, int8(depth), bestScore, bound)

	return bestScore
}

// quiescence resolves captures past the horizon. Only captures that do not
// lose material by static exchange are searched.
func (s *Searcher) quiescence(pos Position, alpha, beta int32, ply int) int32 {
	s.stats.QNodes++

	standpat := Evaluate(pos)
	if standpat >= beta {
		s.stats.QStandPatCutoffs++
		return beta
	}
	if standpat > alpha {
		alpha = standpat
	}

	for _, move := range s.heur.OrderCaptures(pos, pos.LegalMoves(), ply) {
		unapplyFunc := pos.Apply(move)
		score := -s.quiescence(pos, -beta, -alpha, ply+1)
		unapplyFunc()

		if score >= beta {
			s.stats.QBetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
