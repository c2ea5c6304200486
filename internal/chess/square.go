package chess

import (
	"github.com/jtulayan/chessgo/internal/errors"
)

// Square is a linear board index 0..63. Row = index / 8 with row 0 being
// the eighth rank as displayed; file = index % 8 with file 0 being 'a'.
// Square 0 is a8 and square 63 is h1.
type Square int8

// NoSquare is the "none" sentinel, used for an absent en-passant target.
const NoSquare Square = -1

// Coordinate characters.
const (
	FileBase = 'a'
	LastFile = 'h'
	RankBase = '1'
	LastRank = '8'
)

// NewSquare builds a square from a grid row and file.
func NewSquare(row, file int) (Square, error) {
	if row < 0 || row >= BoardSize {
		return NoSquare, &errors.RangeError{What: "rank", Value: row}
	}
	if file < 0 || file >= BoardSize {
		return NoSquare, &errors.RangeError{What: "file", Value: file}
	}
	return Square(row*BoardSize + file), nil
}

// SquareAt is NewSquare for callers that already hold in-bounds values.
func SquareAt(row, file int) Square {
	return Square(row*BoardSize + file)
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Row returns the grid row (0 = eighth rank).
func (s Square) Row() int {
	return int(s) / BoardSize
}

// File returns the file index (0 = 'a').
func (s Square) File() int {
	return int(s) % BoardSize
}

// String returns the coordinate text, or "-" when the square is off the board.
func (s Square) String() string {
	text, err := SquareToCoordinate(s)
	if err != nil {
		return "-"
	}
	return text
}

// SquareToCoordinate returns the two-character coordinate of a square,
// file letter first.
func SquareToCoordinate(s Square) (string, error) {
	if !s.Valid() {
		return "", &errors.RangeError{What: "square", Value: int(s)}
	}
	return string([]byte{
		byte(FileBase + s.File()),
		byte(LastRank - s.Row()),
	}), nil
}

// CoordinateToSquare parses exactly a file letter a-h followed by a rank
// digit 1-8.
func CoordinateToSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    "coordinate",
			Input:    text,
			Expected: "file letter and rank digit",
		}
	}
	f, r := text[0], text[1]
	if f < FileBase || f > LastFile || r < RankBase || r > LastRank {
		return NoSquare, &errors.ParseError{
			Err:   errors.ErrInvalidFormat,
			Field: "coordinate",
			Input: text,
		}
	}
	return SquareAt(int(LastRank-r), int(f-FileBase)), nil
}

// Offset returns the square shifted by the given row and file deltas, and
// false when the result leaves the board.
func (s Square) Offset(dRow, dFile int) (Square, bool) {
	row, file := s.Row()+dRow, s.File()+dFile
	if row < 0 || row >= BoardSize || file < 0 || file >= BoardSize {
		return NoSquare, false
	}
	return SquareAt(row, file), true
}
