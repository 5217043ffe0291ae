package rules

import (
	"github.com/dylhunn/dragontoothmg"
)

// SeePieceValue holds the exchange values, matching the material weights of
// the evaluator.
var SeePieceValue = [7]int32{
	dragontoothmg.Nothing: 0,
	dragontoothmg.Pawn:    100,
	dragontoothmg.Knight:  320,
	dragontoothmg.Bishop:  330,
	dragontoothmg.Rook:    500,
	dragontoothmg.Queen:   900,
	dragontoothmg.King:    20000,
}

// SEE returns the static exchange value of m for the side to move: the
// material balance of the capture sequence on the target square when both
// sides always recapture with their least valuable attacker and may stop at
// any point. Sliders hidden behind the exchanged pieces join in as the
// occupancy thins out. Non-captures score 0.
func (p *Position) SEE(m dragontoothmg.Move) int32 {
	us, them := p.sides()
	from, to := m.From(), m.To()

	attacker, _ := PieceAt(us, from)
	occ := us.All | them.All

	victim, ok := PieceAt(them, to)
	if !ok {
		if attacker != dragontoothmg.Pawn || from%8 == to%8 {
			return 0
		}
		// en passant: the captured pawn sits behind the target square
		victim = dragontoothmg.Pawn
		if p.board.Wtomove {
			occ &^= PositionBB[to-8]
		} else {
			occ &^= PositionBB[to+8]
		}
	}

	var gain [33]int32
	d := 0
	gain[0] = SeePieceValue[victim]
	onSquare := SeePieceValue[attacker]
	if promo := m.Promote(); promo != dragontoothmg.Nothing {
		gain[0] += SeePieceValue[promo] - SeePieceValue[dragontoothmg.Pawn]
		onSquare = SeePieceValue[promo]
	}
	occ &^= PositionBB[from]

	white := !p.board.Wtomove
	for {
		d++
		gain[d] = onSquare - gain[d-1]
		if d == len(gain)-1 {
			break
		}

		bbs := &p.board.Black
		if white {
			bbs = &p.board.White
		}
		attackerBB, piece := minAttacker(attackersOf(bbs, to, white, occ), bbs)
		if attackerBB == 0 {
			break
		}
		occ &^= attackerBB
		onSquare = SeePieceValue[piece]
		white = !white
	}

	for d--; d > 0; d-- {
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}
