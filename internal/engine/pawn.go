package engine

import "github.com/jtulayan/chessgo/internal/chess"

// pawnMoves generates pushes, the double step from the start row, diagonal
// captures and en passant for the pawn on from.
func pawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece) []chess.Move {
	colour := pawn.Colour()
	dir := chess.Forward(colour)
	var moves []chess.Move

	// Forward move
	if one, ok := from.Offset(dir, 0); ok && board.Get(one).IsBlank() {
		moves = append(moves, pawnMove(from, one, pawn, chess.Blank))

		// Double push from starting row
		if from.Row() == chess.PawnStartRow(colour) {
			if two, ok := one.Offset(dir, 0); ok && board.Get(two).IsBlank() {
				moves = append(moves, chess.Move{
					From:     from,
					To:       two,
					Class:    chess.PawnDoubleStep,
					Piece:    pawn,
					Captured: chess.Blank,
				})
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(dir, df)
		if !ok {
			continue
		}
		target := board.Get(to)
		if !target.IsBlank() {
			if target.Colour() != colour {
				moves = append(moves, pawnMove(from, to, pawn, target))
			}
			continue
		}

		// En passant: the victim sits beside the pawn, behind the target.
		if to == board.EnPassant {
			victim := board.Get(chess.SquareAt(from.Row(), to.File()))
			if victim == chess.MakePiece(colour.Opposite(), chess.Pawn) {
				moves = append(moves, chess.Move{
					From:     from,
					To:       to,
					Class:    chess.EnPassantPawnMove,
					Piece:    pawn,
					Captured: victim,
				})
			}
		}
	}
	return moves
}

// pawnMove builds a single-step or capturing pawn move, marking it as a
// promotion (to a queen unless the mover says otherwise) when it reaches
// the far row.
func pawnMove(from, to chess.Square, pawn, captured chess.Piece) chess.Move {
	m := chess.Move{
		From:     from,
		To:       to,
		Class:    chess.PawnMove,
		Piece:    pawn,
		Captured: captured,
	}
	if to.Row() == chess.HomeRow(pawn.Colour().Opposite()) {
		m.Class = chess.PawnMoveWithPromotion
		m.Promotion = chess.Queen
	}
	return m
}

// applyPawnMove applies a pawn move.
func applyPawnMove(board *chess.Board, move chess.Move) {
	colour := move.Piece.Colour()

	// Handle en passant capture
	if move.Class == chess.EnPassantPawnMove {
		board.Set(chess.SquareAt(move.From.Row(), move.To.File()), chess.Blank)
	}

	// A rook taken on its home corner loses its castling right.
	if move.Captured.Type() == chess.Rook {
		updateCastlingRightsForRook(board, move.Captured.Colour(), move.To)
	}
	if move.Captured.Type() == chess.King {
		board.SetKingSquare(move.Captured.Colour(), chess.NoSquare)
	}

	board.Set(move.From, chess.Blank)

	// Handle promotion
	if move.Class == chess.PawnMoveWithPromotion {
		promoted := move.Promotion
		if promoted == chess.NoPieceType {
			promoted = chess.Queen // Default to queen
		}
		board.Set(move.To, chess.MakePiece(colour, promoted))
	} else {
		board.Set(move.To, move.Piece)
	}

	// Set en passant square if double pawn push
	board.EnPassant = chess.NoSquare
	if move.Class == chess.PawnDoubleStep {
		board.EnPassant, _ = move.From.Offset(chess.Forward(colour), 0)
	}

	board.HalfmoveClock = 0 // Pawn move resets clock
	endTurn(board, colour)
}
