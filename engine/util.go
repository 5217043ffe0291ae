package engine

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// clamp restricts v to the inclusive range [low, high].
func clamp[T constraints.Integer](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsMateScore reports whether score encodes a forced mate for either side.
func IsMateScore(score int32) bool {
	return abs(score) >= MateScore
}

// FormatScore renders a score found by a search of the given depth as
// "cp N", or as "mate N" in moves (negative when the side to move is mated).
func FormatScore(score int32, depth int) string {
	if !IsMateScore(score) {
		return fmt.Sprintf("cp %d", score)
	}
	// a mate scores MateScore plus the depth left when it was found
	pliesToMate := depth - int(abs(score)-MateScore)
	if pliesToMate < 0 {
		pliesToMate = 0
	}
	mateInN := (pliesToMate + 1) / 2
	if score < 0 {
		return fmt.Sprintf("mate -%d", mateInN)
	}
	return fmt.Sprintf("mate %d", mateInN)
}
