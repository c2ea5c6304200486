// Package hashing provides Zobrist position hashing and repetition counting.
package hashing

import (
	"golang.org/x/exp/rand"

	"github.com/jtulayan/chessgo/internal/chess"
)

// Fixed seed so that hashes are stable across runs.
const zobristSeed = 0x9d39247e33776d41

var (
	pieceKeys     [12][chess.NumSquares]uint64
	sideKey       uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for p := range pieceKeys {
		for s := range pieceKeys[p] {
			pieceKeys[p][s] = r.Uint64()
		}
	}
	sideKey = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = r.Uint64()
	}
}

// pieceIndex maps a piece to its row in pieceKeys, or -1 for Blank.
func pieceIndex(p chess.Piece) int {
	var base int
	switch p.Type() {
	case chess.NoPieceType:
		return -1
	case chess.Pawn:
		base = 0
	case chess.Knight:
		base = 2
	case chess.Bishop:
		base = 4
	case chess.Rook:
		base = 6
	case chess.Queen:
		base = 8
	case chess.King:
		base = 10
	}
	if p.Colour() == chess.Black {
		base++
	}
	return base
}

// GenerateZobristHash hashes everything that makes two positions the same
// for repetition purposes: placement, side to move, castling rights and
// the en passant file. The clocks are ignored.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for s := chess.Square(0); s < chess.NumSquares; s++ {
		if i := pieceIndex(board.Get(s)); i >= 0 {
			hash ^= pieceKeys[i][s]
		}
	}
	if board.SideToMove == chess.Black {
		hash ^= sideKey
	}
	hash ^= castlingKeys[board.Castling&chess.AllCastling]
	if board.EnPassant.Valid() {
		hash ^= enPassantKeys[board.EnPassant.File()]
	}
	return hash
}

// RepetitionTable counts how often each position hash has been reached.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records one more occurrence of hash and returns its new count.
func (t *RepetitionTable) Add(hash uint64) int {
	t.counts[hash]++
	return t.counts[hash]
}

// Remove takes back one occurrence of hash.
func (t *RepetitionTable) Remove(hash uint64) {
	switch n := t.counts[hash]; {
	case n > 1:
		t.counts[hash] = n - 1
	case n == 1:
		delete(t.counts, hash)
	}
}

// Count returns how often hash has been recorded.
func (t *RepetitionTable) Count(hash uint64) int {
	return t.counts[hash]
}

// UniqueCount returns the number of distinct positions recorded.
func (t *RepetitionTable) UniqueCount() int {
	return len(t.counts)
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[uint64]int)
}
