package rules

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

const (
	bitboardFileA uint64 = 0x0101010101010101
	bitboardFileH uint64 = 0x8080808080808080
)

var PositionBB [64]uint64
var KnightMasks [64]uint64
var KingMoves [64]uint64

func init() {
	initAttackMasks()
}

func initAttackMasks() {
	knightJumps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for sq := 0; sq < 64; sq++ {
		PositionBB[sq] = uint64(1) << uint(sq)
		file, rank := sq%8, sq/8

		for _, jump := range knightJumps {
			f, r := file+jump[0], rank+jump[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				KnightMasks[sq] |= uint64(1) << uint(r*8+f)
			}
		}

		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				f, r := file+df, rank+dr
				if (df != 0 || dr != 0) && f >= 0 && f < 8 && r >= 0 && r < 8 {
					KingMoves[sq] |= uint64(1) << uint(r*8+f)
				}
			}
		}
	}
}

// PawnCaptureBitboards returns the squares attacked by the given pawns, split
// by capture direction.
func PawnCaptureBitboards(pawns uint64, white bool) (east uint64, west uint64) {
	if white {
		return (pawns << 9) &^ bitboardFileA, (pawns << 7) &^ bitboardFileH
	}
	return (pawns >> 7) &^ bitboardFileA, (pawns >> 9) &^ bitboardFileH
}

// attackersOf returns every piece of one colour that attacks sq, given the
// occupancy occ. Sliders are resolved against occ, so removing a piece from
// occ uncovers the x-ray attackers behind it.
func attackersOf(bbs *dragontoothmg.Bitboards, sq uint8, white bool, occ uint64) uint64 {
	east, west := PawnCaptureBitboards(PositionBB[sq], !white)
	diagonal := dragontoothmg.CalculateBishopMoveBitboard(sq, occ)
	orthogonal := dragontoothmg.CalculateRookMoveBitboard(sq, occ)

	hitPieces := (east | west) & bbs.Pawns
	hitPieces |= KnightMasks[sq] & bbs.Knights
	hitPieces |= diagonal & (bbs.Bishops | bbs.Queens)
	hitPieces |= orthogonal & (bbs.Rooks | bbs.Queens)
	hitPieces |= KingMoves[sq] & bbs.Kings
	return hitPieces & occ
}

// minAttacker picks the least valuable piece out of attackers.
func minAttacker(attackers uint64, bbs *dragontoothmg.Bitboards) (uint64, dragontoothmg.Piece) {
	var subset uint64
	var piece dragontoothmg.Piece

	if attackers&bbs.Pawns != 0 {
		subset, piece = attackers&bbs.Pawns, dragontoothmg.Pawn
	} else if attackers&bbs.Knights != 0 {
		subset, piece = attackers&bbs.Knights, dragontoothmg.Knight
	} else if attackers&bbs.Bishops != 0 {
		subset, piece = attackers&bbs.Bishops, dragontoothmg.Bishop
	} else if attackers&bbs.Rooks != 0 {
		subset, piece = attackers&bbs.Rooks, dragontoothmg.Rook
	} else if attackers&bbs.Queens != 0 {
		subset, piece = attackers&bbs.Queens, dragontoothmg.Queen
	} else if attackers&bbs.Kings != 0 {
		subset, piece = attackers&bbs.Kings, dragontoothmg.King
	}

	if subset == 0 {
		return 0, dragontoothmg.Nothing
	}
	return PositionBB[bits.TrailingZeros64(subset)], piece
}

// PieceAt reports which piece type of the given colour occupies sq.
func PieceAt(bbs *dragontoothmg.Bitboards, sq uint8) (dragontoothmg.Piece, bool) {
	bb := uint64(1) << sq
	switch {
	case bbs.Pawns&bb != 0:
		return dragontoothmg.Pawn, true
	case bbs.Knights&bb != 0:
		return dragontoothmg.Knight, true
	case bbs.Bishops&bb != 0:
		return dragontoothmg.Bishop, true
	case bbs.Rooks&bb != 0:
		return dragontoothmg.Rook, true
	case bbs.Queens&bb != 0:
		return dragontoothmg.Queen, true
	case bbs.Kings&bb != 0:
		return dragontoothmg.King, true
	}
	return dragontoothmg.Nothing, false
}
