package engine

import "github.com/jtulayan/chessgo/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)

	// If king position not tracked, search for it
	if !king.Valid() || board.Get(king) != chess.MakePiece(colour, chess.King) {
		king = findKing(board, colour)
		if !king.Valid() {
			return false // No king found
		}
	}

	return IsSquareAttacked(board, king, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	king := chess.MakePiece(colour, chess.King)
	for s := chess.Square(0); s < chess.NumSquares; s++ {
		if board.Get(s) == king {
			return s
		}
	}
	return chess.NoSquare
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, s chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn stands one row behind the
	// square from its own point of view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	for _, df := range []int{-1, 1} {
		if from, ok := s.Offset(-chess.Forward(byColour), df); ok && board.Get(from) == pawn {
			return true
		}
	}

	if attackedByStep(board, s, chess.MakePiece(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(board, s, chess.MakePiece(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	if attackedBySlide(board, s, chess.MakePiece(byColour, chess.Bishop), queen, diagonalDirs) {
		return true
	}
	return attackedBySlide(board, s, chess.MakePiece(byColour, chess.Rook), queen, straightDirs)
}

// attackedByStep checks the squares an offset table away for attacker.
func attackedByStep(board *chess.Board, s chess.Square, attacker chess.Piece, offsets [][2]int) bool {
	for _, offset := range offsets {
		if from, ok := s.Offset(offset[0], offset[1]); ok && board.Get(from) == attacker {
			return true
		}
	}
	return false
}

// attackedBySlide walks each ray from s and reports whether the first
// piece met is one of the two given sliders.
func attackedBySlide(board *chess.Board, s chess.Square, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		from, ok := s.Offset(dir[0], dir[1])
		for ok {
			piece := board.Get(from)
			if !piece.IsBlank() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
