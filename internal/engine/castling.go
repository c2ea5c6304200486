package engine

import "github.com/jtulayan/chessgo/internal/chess"

// Files of the pieces involved in castling.
const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// castlingMoves generates the castling moves of the king on from. Rights,
// rook presence and empty squares between are checked here; attacks on the
// king's path are left to the legal-move filter.
func castlingMoves(board *chess.Board, from chess.Square, king chess.Piece) []chess.Move {
	colour := king.Colour()
	home := chess.HomeRow(colour)
	if from != chess.SquareAt(home, kingFile) {
		return nil
	}
	rook := chess.MakePiece(colour, chess.Rook)

	var moves []chess.Move
	if board.Castling.Has(chess.KingSide(colour)) &&
		board.Get(chess.SquareAt(home, kingsideRookFile)) == rook &&
		emptyBetween(board, home, kingFile, kingsideRookFile) {
		moves = append(moves, chess.Move{
			From:     from,
			To:       chess.SquareAt(home, kingFile+2),
			Class:    chess.KingsideCastle,
			Piece:    king,
			Captured: chess.Blank,
		})
	}
	if board.Castling.Has(chess.QueenSide(colour)) &&
		board.Get(chess.SquareAt(home, queensideRookFile)) == rook &&
		emptyBetween(board, home, queensideRookFile, kingFile) {
		moves = append(moves, chess.Move{
			From:     from,
			To:       chess.SquareAt(home, kingFile-2),
			Class:    chess.QueensideCastle,
			Piece:    king,
			Captured: chess.Blank,
		})
	}
	return moves
}

// emptyBetween reports whether every square strictly between two files of
// a row is empty.
func emptyBetween(board *chess.Board, row, fromFile, toFile int) bool {
	for file := fromFile + 1; file < toFile; file++ {
		if !board.Get(chess.SquareAt(row, file)).IsBlank() {
			return false
		}
	}
	return true
}

// applyCastle applies a castling move: the king moves two files and the
// rook jumps to the square it crossed.
func applyCastle(board *chess.Board, move chess.Move) {
	colour := move.Piece.Colour()
	home := chess.HomeRow(colour)

	var rookFromFile, rookToFile int
	if move.Class == chess.KingsideCastle {
		rookFromFile, rookToFile = kingsideRookFile, kingFile+1
	} else {
		rookFromFile, rookToFile = queensideRookFile, kingFile-1
	}

	// Move king
	board.Set(move.From, chess.Blank)
	board.Set(move.To, move.Piece)

	// Move rook
	rookFrom := chess.SquareAt(home, rookFromFile)
	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.Blank)
	board.Set(chess.SquareAt(home, rookToFile), rook)

	board.SetKingSquare(colour, move.To)
	board.Castling &^= chess.KingSide(colour) | chess.QueenSide(colour)

	board.EnPassant = chess.NoSquare
	board.HalfmoveClock++
	endTurn(board, colour)
}

// updateCastlingRightsForRook removes castling rights when a rook moves
// from, or is captured on, its home corner.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, s chess.Square) {
	if s.Row() != chess.HomeRow(colour) {
		return
	}
	switch s.File() {
	case kingsideRookFile:
		board.Castling &^= chess.KingSide(colour)
	case queensideRookFile:
		board.Castling &^= chess.QueenSide(colour)
	}
}
