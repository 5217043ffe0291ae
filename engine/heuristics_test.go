package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/matryer/is"
)

func TestInsertKillerKeepsNewestFirst(t *testing.T) {
	is := is.New(t)
	h := NewHeuristics()
	first, second, third := mustMove(t, "g1f3"), mustMove(t, "b1c3"), mustMove(t, "e2e4")

	h.InsertKiller(first, 3)
	is.Equal(h.Killers[3][0], first)
	is.Equal(h.Killers[3][1], NullMove)

	h.InsertKiller(second, 3)
	is.Equal(h.Killers[3][0], second)
	is.Equal(h.Killers[3][1], first)

	// re-inserting the newest killer does not evict the older one
	h.InsertKiller(second, 3)
	is.Equal(h.Killers[3][1], first)

	h.InsertKiller(third, 3)
	is.Equal(h.Killers[3], [2]dragontoothmg.Move{third, second})
	is.True(!h.IsKiller(first, 3))
	is.True(h.IsKiller(second, 3))
	is.True(!h.IsKiller(second, 2))
	is.True(!h.IsKiller(NullMove, 4))
}

func TestKillerPlyIsClamped(t *testing.T) {
	is := is.New(t)
	h := NewHeuristics()
	m := mustMove(t, "g1f3")
	h.InsertKiller(m, MaxPly+10)
	is.Equal(h.Killers[MaxPly-1][0], m)
	is.True(h.IsKiller(m, 1000))
}

func TestHistorySaturates(t *testing.T) {
	is := is.New(t)
	h := NewHeuristics()
	h.AddHistory(dragontoothmg.Knight, 21, 3)
	h.AddHistory(dragontoothmg.Knight, 21, 2)
	is.Equal(h.HistoryScore(dragontoothmg.Knight, 21), int32(13))
	is.Equal(h.History[1][21], int32(13))
	is.Equal(h.HistoryScore(dragontoothmg.Bishop, 21), int32(0))

	for i := 0; i < 100; i++ {
		h.AddHistory(dragontoothmg.Queen, 0, 4000)
	}
	is.Equal(h.HistoryScore(dragontoothmg.Queen, 0), HistoryLimit)

	h.AddHistory(dragontoothmg.Nothing, 0, 5)
	is.Equal(h.HistoryScore(dragontoothmg.Nothing, 0), int32(0))

	h.Clear()
	is.Equal(*h, Heuristics{})
}
