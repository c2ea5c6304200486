// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType is the closed set of piece kinds, independent of colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Piece is a piece code: one of KQRBNP for White, kqrbnp for Black, or
// Blank for an empty square. Colour and type are both derived from the
// letter; nothing else is stored.
type Piece byte

// Blank marks an empty square.
const Blank Piece = ' '

// MakePiece creates the code for a piece of the given colour and type.
// NoPieceType yields Blank.
func MakePiece(colour Colour, pt PieceType) Piece {
	if pt == NoPieceType {
		return Blank
	}
	letter := pt.Letter()
	if colour == Black {
		letter += 'a' - 'A'
	}
	return Piece(letter)
}

// W creates a white piece.
func W(pt PieceType) Piece {
	return MakePiece(White, pt)
}

// B creates a black piece.
func B(pt PieceType) Piece {
	return MakePiece(Black, pt)
}

// ParsePiece converts a piece letter to a Piece. ok is false for anything
// other than the twelve piece letters.
func ParsePiece(c byte) (p Piece, ok bool) {
	p = Piece(c)
	return p, p.Type() != NoPieceType
}

// Type extracts the piece type from the code.
func (p Piece) Type() PieceType {
	switch p {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Colour extracts the colour from the code. Only meaningful when the
// piece is not Blank.
func (p Piece) Colour() Colour {
	if p >= 'a' && p <= 'z' {
		return Black
	}
	return White
}

// IsBlank reports whether the square holds no piece.
func (p Piece) IsBlank() bool {
	return p.Type() == NoPieceType
}

// String returns the piece letter, or a space for Blank.
func (p Piece) String() string {
	if p.IsBlank() {
		return " "
	}
	return string(rune(p))
}

// Name returns a human description such as "white knight".
func (p Piece) Name() string {
	if p.IsBlank() {
		return "empty"
	}
	colour := "white"
	if p.Colour() == Black {
		colour = "black"
	}
	return colour + " " + p.Type().String()
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnDoubleStep
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// CastlingRights is a 4-bit mask of remaining castling options.
type CastlingRights uint8

const (
	BlackQueenSide CastlingRights = 1 << iota
	BlackKingSide
	WhiteQueenSide
	WhiteKingSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether every bit in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// KingSide returns the king-side right for a colour.
func KingSide(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingSide
	}
	return BlackKingSide
}

// QueenSide returns the queen-side right for a colour.
func QueenSide(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// HomeRow returns the grid row of a colour's back rank.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnStartRow returns the grid row a colour's pawns start on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// Forward returns the row delta of a pawn advance: rows grow towards
// White's side, so White moves to smaller rows.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}
