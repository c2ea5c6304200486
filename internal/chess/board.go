package chess

import (
	"strings"

	"github.com/jtulayan/chessgo/internal/errors"
)

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, Grid[row][file]; row 0 is the eighth rank.
	Grid [BoardSize][BoardSize]Piece

	// Who has the next move.
	SideToMove Colour

	// Remaining castling options.
	Castling CastlingRights

	// The square a pawn skipped on the previous move, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black moves.
	FullmoveNumber uint

	// Keep track of where the two kings are for check detection.
	WhiteKing Square
	BlackKing Square
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{
		SideToMove:     White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
	b.Clear()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Grid[HomeRow(Black)][file] = B(backRank[file])
		b.Grid[PawnStartRow(Black)][file] = B(Pawn)
		b.Grid[PawnStartRow(White)][file] = W(Pawn)
		b.Grid[HomeRow(White)][file] = W(backRank[file])
	}
	b.SyncKings()

	b.SideToMove = White
	b.Castling = AllCastling
	b.EnPassant = NoSquare
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
}

// PieceAt returns the piece at the given grid row and file.
func (b *Board) PieceAt(row, file int) (Piece, error) {
	if row < 0 || row >= BoardSize {
		return Blank, &errors.RangeError{What: "rank", Value: row}
	}
	if file < 0 || file >= BoardSize {
		return Blank, &errors.RangeError{What: "file", Value: file}
	}
	return b.Grid[row][file], nil
}

// Get returns the piece on a square. The square must be valid.
func (b *Board) Get(s Square) Piece {
	return b.Grid[s.Row()][s.File()]
}

// Set places a piece on a square. The square must be valid.
func (b *Board) Set(s Square, piece Piece) {
	b.Grid[s.Row()][s.File()] = piece
}

// Clear sets every square to Blank. Turn, castling, en passant and the
// clocks are left alone; the king cache no longer points anywhere.
func (b *Board) Clear() {
	for i := 0; i < NumSquares; i++ {
		b.Grid[i/BoardSize][i%BoardSize] = Blank
	}
	b.WhiteKing = NoSquare
	b.BlackKing = NoSquare
}

// KingSquare returns the cached king location for a colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WhiteKing
	}
	return b.BlackKing
}

// SetKingSquare updates the king cache for a colour.
func (b *Board) SetKingSquare(colour Colour, s Square) {
	if colour == White {
		b.WhiteKing = s
	} else {
		b.BlackKing = s
	}
}

// SyncKings recomputes the king cache from the grid. A colour without a
// king gets NoSquare.
func (b *Board) SyncKings() {
	b.WhiteKing, b.BlackKing = NoSquare, NoSquare
	for i := Square(0); i < NumSquares; i++ {
		switch b.Get(i) {
		case W(King):
			b.WhiteKing = i
		case B(King):
			b.BlackKing = i
		}
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the grid as eight "|r n b q k b n r|" lines, top row
// first, with blanks shown as '-'.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte('|')
		for file := 0; file < BoardSize; file++ {
			tile := b.Grid[row][file]
			if tile.IsBlank() {
				sb.WriteByte('-')
			} else {
				sb.WriteByte(byte(tile))
			}
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('|')
		if row < BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
