package hashing

import (
	"testing"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/engine"
)

func mustDecode(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.Decode(fen)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", fen, err)
	}
	return board
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := engine.NewInitialBoard()
	board2 := mustDecode(t, engine.InitialFEN)

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	base := engine.InitialFEN
	tests := []struct {
		name string
		fen  string
	}{
		{"pawn moved", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"},
		{"side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"},
		{"castling rights", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kkq - 0 1"},
		{"en passant file", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1"},
		{"colour swapped piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBqKBNR w KQkq - 0 1"},
	}

	baseHash := GenerateZobristHash(mustDecode(t, base))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if GenerateZobristHash(mustDecode(t, tt.fen)) == baseHash {
				t.Error("Different positions produced the same hash")
			}
		})
	}
}

func TestZobristHashIgnoresClocks(t *testing.T) {
	a := mustDecode(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	b := mustDecode(t, "4k3/8/8/8/8/8/8/R3K3 w - - 37 60")

	if GenerateZobristHash(a) != GenerateZobristHash(b) {
		t.Error("clocks should not affect the hash")
	}
}

func TestZobristHashTransposition(t *testing.T) {
	a := engine.NewInitialBoard()
	b := engine.NewInitialBoard()

	for _, text := range []string{"g1f3", "g8f6", "b1c3", "b8c6"} {
		applyText(t, a, text)
	}
	for _, text := range []string{"b1c3", "b8c6", "g1f3", "g8f6"} {
		applyText(t, b, text)
	}

	if GenerateZobristHash(a) != GenerateZobristHash(b) {
		t.Error("transposed move orders should reach the same hash")
	}
}

func applyText(t *testing.T, board *chess.Board, text string) {
	t.Helper()
	move, err := engine.FindMove(engine.PseudoLegalMoves(board), text)
	if err != nil {
		t.Fatalf("FindMove(%q) error: %v", text, err)
	}
	engine.ApplyMove(board, move)
}

func TestRepetitionTable(t *testing.T) {
	table := NewRepetitionTable()

	if got := table.Add(1); got != 1 {
		t.Errorf("Add(1) = %d; want 1", got)
	}
	if got := table.Add(1); got != 2 {
		t.Errorf("Add(1) = %d; want 2", got)
	}
	table.Add(2)

	if got := table.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d; want 2", got)
	}

	table.Remove(1)
	if got := table.Count(1); got != 1 {
		t.Errorf("Count(1) after Remove = %d; want 1", got)
	}

	table.Remove(1)
	table.Remove(1) // no-op
	if got := table.Count(1); got != 0 {
		t.Errorf("Count(1) = %d; want 0", got)
	}
	if got := table.UniqueCount(); got != 1 {
		t.Errorf("UniqueCount() = %d; want 1", got)
	}

	table.Reset()
	if got := table.UniqueCount(); got != 0 {
		t.Errorf("UniqueCount() after Reset = %d; want 0", got)
	}
}
