package engine

// Bound tags how a stored score relates to the true value of the node.
type Bound uint8

const (
	// The zero Bound marks an empty slot.
	Exact Bound = iota + 1
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	}
	return "empty"
}

// DefaultTTCapacity is the number of slots of a table built without an
// explicit capacity.
const DefaultTTCapacity = 1 << 20

type TTEntry struct {
	Key   uint64
	Depth int8
	Score int32
	Bound Bound
}

type TTStats struct {
	Probes     uint64
	Hits       uint64
	Stores     uint64
	Overwrites uint64
}

// TransTable is a fixed-size transposition table addressed by key modulo its
// capacity. Every store replaces whatever occupies the slot. It is not safe
// for concurrent use.
type TransTable struct {
	entries []TTEntry
	used    int
	stats   TTStats
}

func NewTransTable(capacity int) *TransTable {
	if capacity < 1 {
		capacity = 1
	}
	return &TransTable{entries: make([]TTEntry, capacity)}
}

func (tt *TransTable) slot(key uint64) *TTEntry {
	return &tt.entries[key%uint64(len(tt.entries))]
}

// Probe returns the stored score for key when it is deep enough and its
// bound decides the window: exact scores always, lower bounds at or above
// beta, upper bounds at or below alpha.
func (tt *TransTable) Probe(key uint64, depth int8, alpha, beta int32) (score int32, usable bool) {
	tt.stats.Probes++
	entry := tt.slot(key)
	if entry.Bound == 0 || entry.Key != key || entry.Depth < depth {
		return 0, false
	}
	switch entry.Bound {
	case Exact:
		usable = true
	case LowerBound:
		usable = entry.Score >= beta
	case UpperBound:
		usable = entry.Score <= alpha
	}
	if usable {
		tt.stats.Hits++
	}
	return entry.Score, usable
}

/*
Always replace: a newer result wins regardless of depth. Preferring deeper
or younger entries is the obvious next step if the table gets crowded.
*/
func (tt *TransTable) Store(key uint64, depth int8, score int32, bound Bound) {
	tt.stats.Stores++
	entry := tt.slot(key)
	if entry.Bound == 0 {
		tt.used++
	} else if entry.Key != key {
		tt.stats.Overwrites++
	}
	*entry = TTEntry{Key: key, Depth: depth, Score: score, Bound: bound}
}

// Lookup returns the raw entry stored for key, if any.
func (tt *TransTable) Lookup(key uint64) (TTEntry, bool) {
	entry := tt.slot(key)
	if entry.Bound == 0 || entry.Key != key {
		return TTEntry{}, false
	}
	return *entry, true
}

func (tt *TransTable) Clear() {
	clear(tt.entries)
	tt.used = 0
	tt.stats = TTStats{}
}

// Len is the number of occupied slots.
func (tt *TransTable) Len() int { return tt.used }

func (tt *TransTable) Capacity() int { return len(tt.entries) }

func (tt *TransTable) Stats() TTStats { return tt.stats }
