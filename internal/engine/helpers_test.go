package engine

import (
	"testing"

	"github.com/jtulayan/chessgo/internal/chess"
)

// mustDecode decodes a position or fails the test.
func mustDecode(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := Decode(fen)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", fen, err)
	}
	return board
}

// play finds text among the pseudo-legal moves and applies it.
func play(t testing.TB, board *chess.Board, text string) chess.Move {
	t.Helper()
	move, err := FindMove(PseudoLegalMoves(board), text)
	if err != nil {
		t.Fatalf("FindMove(%q) error: %v", text, err)
	}
	if !ApplyMove(board, move) {
		t.Fatalf("ApplyMove(%q) = false", text)
	}
	return move
}

// moveTexts returns the four-character texts of moves.
func moveTexts(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.Text()
	}
	return texts
}

func sq(t testing.TB, coord string) chess.Square {
	t.Helper()
	s, err := chess.CoordinateToSquare(coord)
	if err != nil {
		t.Fatalf("CoordinateToSquare(%q) error: %v", coord, err)
	}
	return s
}
