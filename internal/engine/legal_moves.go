package engine

import "github.com/jtulayan/chessgo/internal/chess"

// LegalMoves filters the pseudo-legal moves of the side to move down to
// those that do not leave the mover's king attacked. Castling additionally
// requires that the king is not in check and does not pass through an
// attacked square.
func LegalMoves(board *chess.Board) []chess.Move {
	colour := board.SideToMove
	pseudo := PseudoLegalMoves(board)
	legal := make([]chess.Move, 0, len(pseudo))
	inCheck := IsInCheck(board, colour)

	for _, m := range pseudo {
		if m.IsCastle() {
			if inCheck {
				continue
			}
			// The square the king crosses is where the rook lands.
			crossed := chess.SquareAt(m.From.Row(), (m.From.File()+m.To.File())/2)
			if IsSquareAttacked(board, crossed, colour.Opposite()) {
				continue
			}
		}
		if tryMove(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	return len(LegalMoves(board)) > 0
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, m chess.Move) bool {
	testBoard := board.Copy()
	if !ApplyMove(testBoard, m) {
		return false
	}
	return !IsInCheck(testBoard, m.Piece.Colour())
}
