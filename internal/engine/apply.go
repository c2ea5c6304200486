package engine

import (
	"github.com/jtulayan/chessgo/internal/chess"
)

// ApplyMove applies a generated move to the board and updates the board
// state: grid, king cache, castling rights, en passant target, both clocks
// and the side to move. Returns false, leaving the board untouched, if the
// moving piece is not on the origin square.
func ApplyMove(board *chess.Board, move chess.Move) bool {
	if !move.From.Valid() || !move.To.Valid() || board.Get(move.From) != move.Piece {
		return false
	}

	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(board, move)

	case chess.PawnMove, chess.PawnDoubleStep, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		applyPawnMove(board, move)

	case chess.PieceMove:
		applyPieceMove(board, move)

	default:
		return false
	}
	return true
}

// endTurn advances the move counter after Black and hands the move over.
func endTurn(board *chess.Board, colour chess.Colour) {
	if colour == chess.Black {
		board.FullmoveNumber++
	}
	board.SideToMove = colour.Opposite()
}
