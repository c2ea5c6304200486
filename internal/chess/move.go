package chess

import (
	"fmt"
	"strings"
)

// Move represents a single move from one square to another together with
// what it did to the board. Generators fill From, To, Piece, Captured and
// Class; application fills Promotion when a pawn reaches the last row.
type Move struct {
	From Square
	To   Square

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The piece being moved.
	Piece Piece

	// The piece captured (Blank if no capture). For en passant this is the
	// pawn removed from beside the destination.
	Captured Piece

	// The piece type promoted to (NoPieceType if not a promotion).
	Promotion PieceType
}

// Text returns the four-character origin+destination form, e.g. "e2e4".
func (m Move) Text() string {
	return m.From.String() + m.To.String()
}

// LongText is Text with the promotion letter appended, e.g. "e7e8n".
func (m Move) LongText() string {
	if m.Promotion == NoPieceType {
		return m.Text()
	}
	return m.Text() + string(rune(B(m.Promotion)))
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsBlank()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Describe returns a one-line account of the move, e.g.
// "white knight g1-f3" or "black pawn d4xe3 (en passant, captures white pawn)".
func (m Move) Describe() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	desc := fmt.Sprintf("%s %s%s%s", m.Piece.Name(), m.From, sep, m.To)

	var notes []string
	switch m.Class {
	case KingsideCastle:
		notes = append(notes, "castles king-side")
	case QueensideCastle:
		notes = append(notes, "castles queen-side")
	case EnPassantPawnMove:
		notes = append(notes, "en passant")
	}
	if m.IsCapture() {
		notes = append(notes, "captures "+m.Captured.Name())
	}
	if m.IsPromotion() {
		notes = append(notes, "promotes to "+m.Promotion.String())
	}
	if len(notes) > 0 {
		desc += " (" + strings.Join(notes, ", ") + ")"
	}
	return desc
}
