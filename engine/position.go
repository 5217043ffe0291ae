// Package engine implements the search core: a depth-bounded alpha-beta
// negamax over a borrowed Position, with a transposition table, MVV-LVA,
// killer and history move ordering, null-move pruning and a quiescence
// extension filtered by static exchange evaluation.
package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// Position is the board the search borrows from its caller. Every Apply and
// ApplyNull is undone through the returned closure before the search returns,
// so the position, side to move and hash are unchanged afterwards.
type Position interface {
	Hash() uint64
	WhiteToMove() bool
	InCheck() bool
	// LegalMoves returns only moves that do not leave the mover in check.
	LegalMoves() []dragontoothmg.Move
	Apply(m dragontoothmg.Move) func()
	ApplyNull() func()
	Bitboards(white bool) dragontoothmg.Bitboards
	// SEE is the signed material result of the exchange started by m.
	SEE(m dragontoothmg.Move) int32
	// CapturedPiece is the piece m removes, en passant included, or Nothing.
	CapturedPiece(m dragontoothmg.Move) dragontoothmg.Piece
	MovedPiece(m dragontoothmg.Move) dragontoothmg.Piece
}

// NullMove is returned when the root has no legal move.
const NullMove dragontoothmg.Move = 0
