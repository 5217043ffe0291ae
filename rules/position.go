// Package rules adapts the dragontoothmg move generator to the position
// contract the search engine borrows: hashing, legal move generation,
// reversible apply/undo, null moves and static exchange evaluation.
package rules

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrIllegalMove = errors.New("illegal move")
)

// Position is a chess position backed by a dragontoothmg board. It is mutated
// in place by Apply and ApplyNull; the returned closures restore it exactly.
type Position struct {
	board dragontoothmg.Board
}

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	pos, err := NewPosition(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// NewPosition parses and validates a FEN string. The move counters may be
// omitted.
func NewPosition(fen string) (pos *Position, err error) {
	fen, err = normalizeFEN(fen)
	if err != nil {
		return nil, err
	}

	// dragontoothmg panics on malformed input rather than returning an error
	defer func() {
		if r := recover(); r != nil {
			pos = nil
			err = fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, r)
		}
	}()

	pos = &Position{board: dragontoothmg.ParseFen(fen)}
	if pos.opponentInCheck() {
		return nil, fmt.Errorf("%w: %q: side not to move is in check", ErrInvalidFEN, fen)
	}
	return pos, nil
}

// opponentInCheck reports whether the side that just moved left its king
// attacked. dragontoothmg would generate the king capture and then panic.
func (p *Position) opponentInCheck() bool {
	us, them := p.sides()
	kingSq := uint8(bits.TrailingZeros64(them.Kings))
	return attackersOf(us, kingSq, p.board.Wtomove, us.All|them.All) != 0
}

func normalizeFEN(fen string) (string, error) {
	fields := strings.Fields(fen)
	if len(fields) == 4 {
		fields = append(fields, "0", "1")
	}
	if len(fields) != 6 {
		return "", fmt.Errorf("%w: %q: expected 6 fields, got %d", ErrInvalidFEN, fen, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return "", fmt.Errorf("%w: %q: expected 8 ranks, got %d", ErrInvalidFEN, fen, len(ranks))
	}
	var whiteKings, blackKings int
	for _, rank := range ranks {
		width := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				width += int(c - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", c):
				width++
				if c == 'K' {
					whiteKings++
				} else if c == 'k' {
					blackKings++
				}
			default:
				return "", fmt.Errorf("%w: %q: unexpected character %q", ErrInvalidFEN, fen, c)
			}
		}
		if width != 8 {
			return "", fmt.Errorf("%w: %q: rank %q has %d squares", ErrInvalidFEN, fen, rank, width)
		}
	}
	if strings.ContainsAny(ranks[0], "pP") || strings.ContainsAny(ranks[7], "pP") {
		return "", fmt.Errorf("%w: %q: pawn on the first or last rank", ErrInvalidFEN, fen)
	}
	if whiteKings != 1 || blackKings != 1 {
		return "", fmt.Errorf("%w: %q: each side needs exactly one king", ErrInvalidFEN, fen)
	}
	if fields[1] != "w" && fields[1] != "b" {
		return "", fmt.Errorf("%w: %q: side to move must be w or b", ErrInvalidFEN, fen)
	}
	for _, counter := range fields[4:] {
		if _, err := strconv.Atoi(counter); err != nil {
			return "", fmt.Errorf("%w: %q: bad move counter %q", ErrInvalidFEN, fen, counter)
		}
	}
	return strings.Join(fields, " "), nil
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	return &Position{board: p.board}
}

func (p *Position) Hash() uint64 { return p.board.Hash() }

func (p *Position) WhiteToMove() bool { return p.board.Wtomove }

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.board.OurKingInCheck() }

// LegalMoves generates the moves that do not leave the mover's king in check.
func (p *Position) LegalMoves() []dragontoothmg.Move { return p.board.GenerateLegalMoves() }

// Apply plays m and returns the closure that takes it back.
func (p *Position) Apply(m dragontoothmg.Move) func() { return p.board.Apply(m) }

// ApplyNull passes the turn. dragontoothmg has no native null move, so the
// side flip goes through a FEN round trip, which also clears the en passant
// square and recomputes the hash. Undo restores the saved board verbatim.
func (p *Position) ApplyNull() func() {
	saved := p.board
	fields := strings.Fields(p.board.ToFen())
	for len(fields) < 6 {
		fields = append(fields, "0")
	}
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"
	p.board = dragontoothmg.ParseFen(strings.Join(fields, " "))
	return func() { p.board = saved }
}

// Bitboards returns the piece bitboards of one colour.
func (p *Position) Bitboards(white bool) dragontoothmg.Bitboards {
	if white {
		return p.board.White
	}
	return p.board.Black
}

func (p *Position) FEN() string { return p.board.ToFen() }

// HalfmoveClock is the number of plies since the last capture or pawn move.
func (p *Position) HalfmoveClock() int {
	fields := strings.Fields(p.board.ToFen())
	if len(fields) < 5 {
		return 0
	}
	n, _ := strconv.Atoi(fields[4])
	return n
}

func (p *Position) FullmoveNumber() int { return int(p.board.Fullmoveno) }

func (p *Position) IsCheckmate() bool {
	return p.InCheck() && len(p.LegalMoves()) == 0
}

func (p *Position) IsStalemate() bool {
	return !p.InCheck() && len(p.LegalMoves()) == 0
}

// IsCapture reports whether m takes a piece, en passant included.
func (p *Position) IsCapture(m dragontoothmg.Move) bool {
	return p.CapturedPiece(m) != dragontoothmg.Nothing
}

// CapturedPiece returns the type of the piece m removes from the board.
func (p *Position) CapturedPiece(m dragontoothmg.Move) dragontoothmg.Piece {
	us, them := p.sides()
	if victim, ok := PieceAt(them, m.To()); ok {
		return victim
	}
	if mover, _ := PieceAt(us, m.From()); mover == dragontoothmg.Pawn && m.From()%8 != m.To()%8 {
		return dragontoothmg.Pawn
	}
	return dragontoothmg.Nothing
}

// MovedPiece returns the type of the piece m moves.
func (p *Position) MovedPiece(m dragontoothmg.Move) dragontoothmg.Piece {
	us, _ := p.sides()
	piece, _ := PieceAt(us, m.From())
	return piece
}

func (p *Position) sides() (us *dragontoothmg.Bitboards, them *dragontoothmg.Bitboards) {
	if p.board.Wtomove {
		return &p.board.White, &p.board.Black
	}
	return &p.board.Black, &p.board.White
}

// String renders the board as an 8x8 diagram, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := uint8(rank*8 + file)
			c := byte('.')
			if piece, ok := PieceAt(&p.board.White, sq); ok {
				c = pieceLetters[piece]
			} else if piece, ok := PieceAt(&p.board.Black, sq); ok {
				c = pieceLetters[piece] + ('a' - 'A')
			}
			sb.WriteByte(c)
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

var pieceLetters = [7]byte{
	dragontoothmg.Nothing: '?',
	dragontoothmg.Pawn:    'P',
	dragontoothmg.Knight:  'N',
	dragontoothmg.Bishop:  'B',
	dragontoothmg.Rook:    'R',
	dragontoothmg.Queen:   'Q',
	dragontoothmg.King:    'K',
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := p.Apply(m)
		nodes += p.Perft(depth - 1)
		undo()
	}
	return nodes
}

// PerftDivide reports the perft count below each root move.
func (p *Position) PerftDivide(depth int) map[dragontoothmg.Move]uint64 {
	div := make(map[dragontoothmg.Move]uint64)
	for _, m := range p.LegalMoves() {
		undo := p.Apply(m)
		div[m] = p.Perft(depth - 1)
		undo()
	}
	return div
}
