package engine

import "github.com/jtulayan/chessgo/internal/chess"

// Status summarizes the position for the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
	FiftyMoveDraw
	InsufficientMaterial
	// Evaluate never returns this; it needs the game history.
	ThreefoldRepetition
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveDraw:
		return "draw by fifty-move rule"
	case InsufficientMaterial:
		return "draw by insufficient material"
	case ThreefoldRepetition:
		return "draw by threefold repetition"
	}
	return "unknown"
}

// IsOver reports whether the status ends the game.
func (s Status) IsOver() bool {
	switch s {
	case Checkmate, Stalemate, FiftyMoveDraw, InsufficientMaterial, ThreefoldRepetition:
		return true
	}
	return false
}

// FiftyMoveLimit is the halfmove clock value at which a draw applies.
const FiftyMoveLimit = 100

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.SideToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.SideToMove) && !HasLegalMoves(board)
}

// Evaluate classifies the position. Mate and stalemate take precedence over
// the draw rules.
func Evaluate(board *chess.Board) Status {
	inCheck := IsInCheck(board, board.SideToMove)
	if !HasLegalMoves(board) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if board.HalfmoveClock >= FiftyMoveLimit {
		return FiftyMoveDraw
	}
	if HasInsufficientMaterial(board) {
		return InsufficientMaterial
	}
	if inCheck {
		return Check
	}
	return Ongoing
}
