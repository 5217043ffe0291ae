package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Board indexing for evaluation: maps a square to its mirror across the
// horizontal axis (a1 <-> a8).
var FlipView = [64]int{
	56, 57, 58, 59, 60, 61, 62, 63,
	48, 49, 50, 51, 52, 53, 54, 55,
	40, 41, 42, 43, 44, 45, 46, 47,
	32, 33, 34, 35, 36, 37, 38, 39,
	24, 25, 26, 27, 28, 29, 30, 31,
	16, 17, 18, 19, 20, 21, 22, 23,
	8, 9, 10, 11, 12, 13, 14, 15,
	0, 1, 2, 3, 4, 5, 6, 7,
}

// PieceValue is the material weight per piece type, also used for MVV-LVA.
var PieceValue = [7]int32{
	dragontoothmg.Nothing: 0,
	dragontoothmg.Pawn:    100,
	dragontoothmg.Knight:  320,
	dragontoothmg.Bishop:  330,
	dragontoothmg.Rook:    500,
	dragontoothmg.Queen:   900,
	dragontoothmg.King:    20000,
}

// Midgame piece-square tables, laid out as seen from white with rank 8 on the
// first row. White pieces index through FlipView, black pieces index directly.
var PSQT_MG = [7][64]int32{
	dragontoothmg.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	dragontoothmg.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	dragontoothmg.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	dragontoothmg.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	dragontoothmg.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	dragontoothmg.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// Evaluate scores the position from the side to move's point of view.
func Evaluate(pos Position) int32 {
	score := evaluateWhite(pos)
	if !pos.WhiteToMove() {
		return -score
	}
	return score
}

// evaluateWhite is material plus piece-square bonus, positive for white.
func evaluateWhite(pos Position) int32 {
	white, black := pos.Bitboards(true), pos.Bitboards(false)
	return countPieceTables(&white, true) - countPieceTables(&black, false)
}

func countPieceTables(bbs *dragontoothmg.Bitboards, white bool) (score int32) {
	pieces := [7]uint64{
		dragontoothmg.Pawn:   bbs.Pawns,
		dragontoothmg.Knight: bbs.Knights,
		dragontoothmg.Bishop: bbs.Bishops,
		dragontoothmg.Rook:   bbs.Rooks,
		dragontoothmg.Queen:  bbs.Queens,
		dragontoothmg.King:   bbs.Kings,
	}
	for piece := dragontoothmg.Pawn; piece <= dragontoothmg.King; piece++ {
		table := &PSQT_MG[piece]
		for x := pieces[piece]; x != 0; x &= x - 1 {
			idx := bits.TrailingZeros64(x)
			if white {
				idx = FlipView[idx]
			}
			score += PieceValue[piece] + table[idx]
		}
	}
	return score
}
