package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

const (
	// MaxPly bounds the killer table; deeper plies share the last row.
	MaxPly = 64

	// HistoryLimit caps a history entry so repeated bonuses cannot overflow.
	HistoryLimit int32 = 1 << 24
)

// Heuristics holds the move-ordering hints learned during search. It is owned
// by the caller and may be shared across searches on purpose; its content
// only affects move order, never the search result.
type Heuristics struct {
	// Killers holds the two most recent quiet moves that caused a beta
	// cutoff at each ply, newest first.
	Killers [MaxPly][2]dragontoothmg.Move

	// History is indexed by moving piece type (Pawn=0 .. King=5) and
	// destination square.
	History [6][64]int32
}

func NewHeuristics() *Heuristics {
	return &Heuristics{}
}

func killerPly(ply int) int {
	return clamp(ply, 0, MaxPly-1)
}

// InsertKiller records a cutoff move at ply, pushing the previous newest
// killer into the second slot.
func (h *Heuristics) InsertKiller(move dragontoothmg.Move, ply int) {
	ply = killerPly(ply)
	if move != h.Killers[ply][0] {
		h.Killers[ply][1] = h.Killers[ply][0]
		h.Killers[ply][0] = move
	}
}

func (h *Heuristics) IsKiller(move dragontoothmg.Move, ply int) bool {
	ply = killerPly(ply)
	return move != NullMove && (h.Killers[ply][0] == move || h.Killers[ply][1] == move)
}

// AddHistory rewards a quiet cutoff move by depth squared.
func (h *Heuristics) AddHistory(piece dragontoothmg.Piece, to uint8, depth int) {
	if piece == dragontoothmg.Nothing {
		return
	}
	bonus := int32(clamp(depth*depth, 0, int(HistoryLimit)))
	entry := &h.History[piece-1][to]
	*entry = min(*entry+bonus, HistoryLimit)
}

func (h *Heuristics) HistoryScore(piece dragontoothmg.Piece, to uint8) int32 {
	if piece == dragontoothmg.Nothing {
		return 0
	}
	return h.History[piece-1][to]
}

// Clear forgets all killers and history.
func (h *Heuristics) Clear() {
	*h = Heuristics{}
}
