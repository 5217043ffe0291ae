package rules

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// FormatSAN renders m, which must be legal in p, in standard algebraic
// notation including the check or mate suffix.
func (p *Position) FormatSAN(m dragontoothmg.Move) string {
	san := p.sanBody(m, p.LegalMoves())

	undo := p.Apply(m)
	if p.InCheck() {
		if len(p.LegalMoves()) == 0 {
			san += "#"
		} else {
			san += "+"
		}
	}
	undo()
	return san
}

func (p *Position) sanBody(m dragontoothmg.Move, legal []dragontoothmg.Move) string {
	from, to := m.From(), m.To()
	piece := p.MovedPiece(m)

	if piece == dragontoothmg.King {
		switch int(to) - int(from) {
		case 2:
			return "O-O"
		case -2:
			return "O-O-O"
		}
	}

	var sb strings.Builder
	capture := p.IsCapture(m)
	if piece == dragontoothmg.Pawn {
		if capture {
			sb.WriteByte(squareName(from)[0])
		}
	} else {
		sb.WriteByte(pieceLetters[piece])
		sb.WriteString(disambiguation(p, m, piece, legal))
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(squareName(to))
	if promo := m.Promote(); promo != dragontoothmg.Nothing {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetters[promo])
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same piece type to the same square.
func disambiguation(p *Position, m dragontoothmg.Move, piece dragontoothmg.Piece, legal []dragontoothmg.Move) string {
	from := m.From()
	var rivals, sameFile, sameRank int
	for _, other := range legal {
		if other.To() != m.To() || other.From() == from || p.MovedPiece(other) != piece {
			continue
		}
		rivals++
		if other.From()%8 == from%8 {
			sameFile++
		}
		if other.From()/8 == from/8 {
			sameRank++
		}
	}
	name := squareName(from)
	switch {
	case rivals == 0:
		return ""
	case sameFile == 0:
		return name[:1]
	case sameRank == 0:
		return name[1:]
	default:
		return name
	}
}

// ParseSAN resolves a move in standard algebraic notation against the legal
// moves of p. Annotation suffixes are ignored and long algebraic input such
// as "e2e4" or "e7e8q" is accepted as well.
func (p *Position) ParseSAN(s string) (dragontoothmg.Move, error) {
	s = strings.TrimSpace(s)
	want := strings.TrimRight(s, "+#!?")
	want = strings.ReplaceAll(want, "0", "O")
	if want == "" {
		return 0, fmt.Errorf("%w: empty move", ErrIllegalMove)
	}

	legal := p.LegalMoves()
	for _, m := range legal {
		if p.sanBody(m, legal) == want || m.String() == strings.ToLower(s) {
			return m, nil
		}
	}
	// promotions are often written without the '='
	if n := len(want); n > 2 && strings.ContainsRune("QRBN", rune(want[n-1])) && want[n-2] != '=' {
		alt := want[:n-1] + "=" + want[n-1:]
		for _, m := range legal {
			if p.sanBody(m, legal) == alt {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q in %s", ErrIllegalMove, s, p.FEN())
}

func squareName(sq uint8) string {
	return string([]byte{'a' + sq%8, '1' + sq/8})
}
