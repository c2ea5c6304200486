package engine

import "github.com/jtulayan/chessgo/internal/chess"

// Direction and offset tables, as {row delta, file delta}.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// PseudoLegalMoves returns every move of the side to move that obeys the
// movement pattern of its piece and board occupancy. Squares are visited in
// index order, so the result is deterministic for a given board.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for s := chess.Square(0); s < chess.NumSquares; s++ {
		piece := board.Get(s)
		if piece.IsBlank() || piece.Colour() != board.SideToMove {
			continue
		}
		moves = append(moves, GenerateFrom(board, s)...)
	}
	return moves
}

// GenerateFrom returns the pseudo-legal moves of whatever piece stands on
// from, regardless of whose turn it is. An empty or invalid square yields
// no moves.
func GenerateFrom(board *chess.Board, from chess.Square) []chess.Move {
	if !from.Valid() {
		return nil
	}
	piece := board.Get(from)

	switch piece.Type() {
	case chess.NoPieceType:
		return nil
	case chess.Pawn:
		return pawnMoves(board, from, piece)
	case chess.Knight:
		return stepMoves(board, from, piece, knightOffsets)
	case chess.Bishop:
		return slideMoves(board, from, piece, diagonalDirs)
	case chess.Rook:
		return slideMoves(board, from, piece, straightDirs)
	case chess.Queen:
		return slideMoves(board, from, piece, queenDirs)
	case chess.King:
		return append(stepMoves(board, from, piece, kingOffsets), castlingMoves(board, from, piece)...)
	}
	return nil
}

// stepMoves generates single-step moves (knight, king) from an offset table.
func stepMoves(board *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		target := board.Get(to)
		if target.IsBlank() || target.Colour() != piece.Colour() {
			moves = append(moves, pieceMove(from, to, piece, target))
		}
	}
	return moves
}

// slideMoves generates moves for a sliding piece (bishop, rook, queen).
// Each ray stops at the first occupied square, which is included only when
// it holds an opposing piece.
func slideMoves(board *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.Get(to)
			if !target.IsBlank() {
				if target.Colour() != piece.Colour() {
					moves = append(moves, pieceMove(from, to, piece, target))
				}
				break // Blocked
			}
			moves = append(moves, pieceMove(from, to, piece, target))
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

func pieceMove(from, to chess.Square, piece, captured chess.Piece) chess.Move {
	return chess.Move{
		From:     from,
		To:       to,
		Class:    chess.PieceMove,
		Piece:    piece,
		Captured: captured,
	}
}
