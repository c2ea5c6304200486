// Package engine provides move generation, move application and the
// position codec for the chess board.
package engine

import (
	"strconv"
	"strings"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Number of space-separated fields in an encoded position.
const fenFields = 6

// Field names used in parse errors.
const (
	fieldPlacement = "placement"
	fieldSide      = "side to move"
	fieldCastling  = "castling rights"
	fieldEnPassant = "en passant target"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

// castlingLetters lists the castling characters in encoding order with
// the bit each stands for.
var castlingLetters = []struct {
	letter byte
	right  chess.CastlingRights
}{
	{'K', chess.WhiteKingSide},
	{'Q', chess.WhiteQueenSide},
	{'k', chess.BlackKingSide},
	{'q', chess.BlackQueenSide},
}

// Decode builds a new board from an encoded position. The text is split
// into its six fields up front and each field is decoded on its own; any
// failure returns a *errors.ParseError wrapping errors.ErrInvalidFormat and
// no board.
func Decode(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    "position",
			Input:    fen,
			Expected: strconv.Itoa(fenFields) + " space-separated fields",
		}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}

	var err error
	if board.HalfmoveClock, err = parseCounter(fieldHalfmove, parts[4]); err != nil {
		return nil, err
	}
	if board.FullmoveNumber, err = parseCounter(fieldFullmove, parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field, row 0 first.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return placementError(positions, "8 rows separated by '/'")
	}

	for row, text := range rows {
		file := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := chess.ParsePiece(c)
				if !ok {
					return placementError(positions, "piece letter or digit 1-8")
				}
				if file >= chess.BoardSize {
					return placementError(positions, "8 squares per row")
				}
				board.Grid[row][file] = piece
				file++
			}
			if file > chess.BoardSize {
				return placementError(positions, "8 squares per row")
			}
		}
		if file != chess.BoardSize {
			return placementError(positions, "8 squares per row")
		}
	}

	board.SyncKings()
	return checkKings(board, positions)
}

// checkKings rejects a placement with more than one king of a colour.
// A missing king is allowed so that a cleared board still round-trips.
func checkKings(board *chess.Board, positions string) error {
	counts := map[chess.Piece]int{}
	for s := chess.Square(0); s < chess.NumSquares; s++ {
		if p := board.Get(s); p.Type() == chess.King {
			counts[p]++
		}
	}
	if counts[chess.W(chess.King)] > 1 || counts[chess.B(chess.King)] > 1 {
		return placementError(positions, "at most one king per side")
	}
	return nil
}

func placementError(input, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFormat,
		Field:    fieldPlacement,
		Input:    input,
		Expected: expected,
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.SideToMove = chess.White
	case "b":
		board.SideToMove = chess.Black
	default:
		return &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    fieldSide,
			Input:    side,
			Expected: "w or b",
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field, rebuilding
// the mask from the letters present.
func parseCastlingRights(board *chess.Board, castling string) error {
	board.Castling = chess.NoCastling
	if castling == "-" {
		return nil
	}

	for i := 0; i < len(castling); i++ {
		right, ok := castlingRight(castling[i])
		if !ok || board.Castling.Has(right) {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFormat,
				Field:    fieldCastling,
				Input:    castling,
				Expected: "- or distinct letters from KQkq",
			}
		}
		board.Castling |= right
	}
	return nil
}

func castlingRight(c byte) (chess.CastlingRights, bool) {
	for _, cl := range castlingLetters {
		if cl.letter == c {
			return cl.right, true
		}
	}
	return chess.NoCastling, false
}

// parseEnPassant parses the en passant target square field. A target can
// only lie on the third or sixth rank.
func parseEnPassant(board *chess.Board, target string) error {
	board.EnPassant = chess.NoSquare
	if target == "-" {
		return nil
	}

	s, err := chess.CoordinateToSquare(target)
	if err != nil {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    fieldEnPassant,
			Input:    target,
			Expected: "- or a coordinate",
		}
	}
	if s.Row() != 2 && s.Row() != 5 {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    fieldEnPassant,
			Input:    target,
			Expected: "a square on rank 3 or 6",
		}
	}
	board.EnPassant = s
	return nil
}

// parseCounter parses a non-negative decimal integer field.
func parseCounter(field, text string) (uint, error) {
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    field,
			Input:    text,
			Expected: "non-negative integer",
		}
	}
	return uint(n), nil
}

// Encode converts a board to its six-field text form.
func Encode(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.FullmoveNumber), 10))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Grid[row][file]
			if piece.IsBlank() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(byte(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.SideToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
// An empty mask is written as "-" in this field only.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if board.Castling == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	for _, cl := range castlingLetters {
		if board.Castling.Has(cl.right) {
			sb.WriteByte(cl.letter)
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
