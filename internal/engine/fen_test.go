package engine

import (
	"strings"
	"testing"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/errors"
	"github.com/jtulayan/chessgo/internal/testutil"
)

func TestEncode_InitialPosition(t *testing.T) {
	testutil.AssertEqual(t, Encode(NewInitialBoard()), InitialFEN)
}

func TestDecode_Fields(t *testing.T) {
	board := mustDecode(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b Kq e3 7 42")

	testutil.AssertEqual(t, board.Get(sq(t, "a8")), chess.B(chess.Rook))
	testutil.AssertEqual(t, board.Get(sq(t, "e5")), chess.W(chess.Knight))
	testutil.AssertEqual(t, board.Get(sq(t, "b8")), chess.Blank)
	testutil.AssertEqual(t, board.SideToMove, chess.Black)
	testutil.AssertEqual(t, board.Castling, chess.WhiteKingSide|chess.BlackQueenSide)
	testutil.AssertEqual(t, board.EnPassant, sq(t, "e3"))
	testutil.AssertEqual(t, board.HalfmoveClock, uint(7))
	testutil.AssertEqual(t, board.FullmoveNumber, uint(42))
	testutil.AssertEqual(t, board.WhiteKing, sq(t, "e1"))
	testutil.AssertEqual(t, board.BlackKing, sq(t, "e8"))
}

func TestDecode_MatchesInitialBoard(t *testing.T) {
	testutil.AssertEqual(t, mustDecode(t, InitialFEN), NewInitialBoard())
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Qk - 99 120",
		"4k3/8/8/8/8/8/8/4K3 b - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board := mustDecode(t, fen)
			testutil.AssertEqual(t, Encode(board), fen)

			again := mustDecode(t, Encode(board))
			testutil.AssertEqual(t, again, board)
		})
	}
}

func TestFEN_RoundTripAfterMoves(t *testing.T) {
	board := NewInitialBoard()
	for _, m := range []string{"e2e4", "d7d5", "e4d5", "g8f6", "f1b5", "c7c6", "d5c6", "d8d2", "b1d2", "e7e5", "c6c7"} {
		play(t, board, m)
		testutil.AssertEqual(t, mustDecode(t, Encode(board)), board, "after %s", m)
	}
}

func TestEncode_NoCastlingKeepsOtherFields(t *testing.T) {
	board := NewInitialBoard()
	board.Castling = chess.NoCastling

	fen := Encode(board)
	testutil.AssertEqual(t, fen, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	testutil.AssertEqual(t, len(strings.Fields(fen)), 6)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty", "", "position"},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", "position"},
		{"seven fields", InitialFEN + " extra", "position"},
		{"seven rows", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"nine rows", "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"short row", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"long row", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"digits overflow row", "rnbqkbnr/pppppppp/44p/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"digit nine", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"digit zero", "rnbqkbnr/pppppppp/08/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"unknown letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"empty row", "rnbqkbnr//8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"two black kings", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNk w KQ - 0 1", fieldPlacement},
		{"two white kings", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKKBNR w KQkq - 0 1", fieldPlacement},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", fieldSide},
		{"upper case side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR W KQkq - 0 1", fieldSide},
		{"duplicate castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKq - 0 1", fieldCastling},
		{"unknown castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQx - 0 1", fieldCastling},
		{"dash with letters", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ- - 0 1", fieldCastling},
		{"en passant off board", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z3 0 1", fieldEnPassant},
		{"en passant truncated", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e 0 1", fieldEnPassant},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", fieldEnPassant},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", fieldHalfmove},
		{"word halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - abc 1", fieldHalfmove},
		{"fractional fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1.5", fieldFullmove},
		{"signed fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 +1", fieldFullmove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := Decode(tt.fen)
			if board != nil {
				t.Errorf("Decode(%q) returned a board alongside an error", tt.fen)
			}
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFormat)

			var parseErr *errors.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Decode(%q) error %T is not a *ParseError", tt.fen, err)
			}
			testutil.AssertEqual(t, parseErr.Field, tt.wantField)
		})
	}
}

func TestFEN_ClearedBoardRoundTrip(t *testing.T) {
	board := NewInitialBoard()
	board.Clear()

	fen := Encode(board)
	testutil.AssertEqual(t, fen, "8/8/8/8/8/8/8/8 w KQkq - 0 1")

	again := mustDecode(t, fen)
	testutil.AssertEqual(t, again, board)
}

func TestDecode_ExtraWhitespace(t *testing.T) {
	board := mustDecode(t, "  rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR   w KQkq -  0 1 ")
	testutil.AssertEqual(t, Encode(board), InitialFEN)
}
