package game

const fiftyMoveLimit = 100

// State captures the information we need to reason about repetitions and draws.
type State struct {
	Hash   uint64
	Rule50 int
}

// History is the stack of positions reached in a game, oldest first.
type History struct {
	states []State
}

// Push appends the state reached after a move.
func (h *History) Push(hash uint64, rule50 int) {
	h.states = append(h.states, State{Hash: hash, Rule50: rule50})
}

func (h *History) Len() int { return len(h.states) }

// IsFiftyMove reports whether a hundred plies passed without a capture or a
// pawn move.
func (h *History) IsFiftyMove() bool {
	if len(h.states) == 0 {
		return false
	}
	return h.states[len(h.states)-1].Rule50 >= fiftyMoveLimit
}

// IsThreefold reports whether the current position occurred twice before.
func (h *History) IsThreefold() bool {
	if len(h.states) == 0 {
		return false
	}
	curr := h.states[len(h.states)-1]
	return h.repetitions(curr.Hash, curr.Rule50) >= 2
}

// repetitions counts earlier occurrences of hash. Positions before the last
// irreversible move cannot repeat, so only the last rule50 plies are scanned.
func (h *History) repetitions(hash uint64, rule50 int) (count int) {
	if len(h.states) <= 1 {
		return 0
	}
	start := len(h.states) - 1 - rule50
	if start < 0 {
		start = 0
	}
	end := len(h.states) - 2
	for i := start; i <= end; i++ {
		if h.states[i].Hash == hash {
			count++
		}
	}
	return count
}
