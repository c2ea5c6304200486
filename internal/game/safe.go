package game

import (
	"sync"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/engine"
)

// SafeGame wraps Game with mutex protection for concurrent access.
// Listing moves replaces the candidate cache, so it takes the write lock.
type SafeGame struct {
	game *Game
	mu   sync.RWMutex
}

// NewSafeGame wraps g. g must not be used directly afterwards.
func NewSafeGame(g *Game) *SafeGame {
	return &SafeGame{game: g}
}

// SideToMove returns the colour to move.
func (s *SafeGame) SideToMove() chess.Colour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.SideToMove()
}

// Board returns a copy of the current board.
func (s *SafeGame) Board() *chess.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Board()
}

// PieceAt returns the piece at the given grid position.
func (s *SafeGame) PieceAt(row, file int) (chess.Piece, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.PieceAt(row, file)
}

// String returns the plain board dump.
func (s *SafeGame) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.String()
}

// FEN returns the current position text.
func (s *SafeGame) FEN() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.FEN()
}

// CreateMemento snapshots the current position.
func (s *SafeGame) CreateMemento() Memento {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.CreateMemento()
}

// Status classifies the current position.
func (s *SafeGame) Status() engine.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Status()
}

// ListPossibleMoves lists pseudo-legal moves and caches them.
func (s *SafeGame) ListPossibleMoves() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ListPossibleMoves()
}

// ListLegalMoves lists legal moves and caches them.
func (s *SafeGame) ListLegalMoves() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ListLegalMoves()
}

// MakeMove plays a listed move.
func (s *SafeGame) MakeMove(text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MakeMove(text)
}

// Restore replaces the position atomically.
func (s *SafeGame) Restore(m Memento) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Restore(m)
}

// Undo steps back one change.
func (s *SafeGame) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Undo()
}

// Redo replays one undone change.
func (s *SafeGame) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Redo()
}

// Clear empties the board.
func (s *SafeGame) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Clear()
}
