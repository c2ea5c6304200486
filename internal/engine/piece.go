package engine

import "github.com/jtulayan/chessgo/internal/chess"

// applyPieceMove applies a piece (non-pawn) move, including plain king
// steps.
func applyPieceMove(board *chess.Board, move chess.Move) {
	colour := move.Piece.Colour()
	captured := board.Get(move.To)

	// Move the piece
	board.Set(move.From, chess.Blank)
	board.Set(move.To, move.Piece)

	// Update king position if king moved
	if move.Piece.Type() == chess.King {
		board.SetKingSquare(colour, move.To)
		board.Castling &^= chess.KingSide(colour) | chess.QueenSide(colour)
	}

	// Update castling rights if rook moved or captured
	if move.Piece.Type() == chess.Rook {
		updateCastlingRightsForRook(board, colour, move.From)
	}
	if captured.Type() == chess.Rook {
		updateCastlingRightsForRook(board, captured.Colour(), move.To)
	}
	if captured.Type() == chess.King {
		board.SetKingSquare(captured.Colour(), chess.NoSquare)
	}

	board.EnPassant = chess.NoSquare

	// Update halfmove clock
	if !captured.IsBlank() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	endTurn(board, colour)
}
