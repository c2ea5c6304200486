// Package game provides the stateful board surface used by the game loop:
// move listing, move making, mementos and undo/redo history.
package game

import (
	"golang.org/x/exp/slices"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/engine"
	"github.com/jtulayan/chessgo/internal/errors"
	"github.com/jtulayan/chessgo/internal/hashing"
)

// Game owns a board together with its move history.
type Game struct {
	board *chess.Board

	// Moves from the last listing, or nil when the board changed since.
	candidates []chess.Move

	legalOnly bool

	undo []Memento
	redo []Memento

	// Occurrences of each position along the current line.
	seen *hashing.RepetitionTable
}

// Option configures a Game.
type Option func(*Game)

// WithLegalOnly makes ListMoves and an unlisted MakeMove use the
// king-safety filter.
func WithLegalOnly(legal bool) Option {
	return func(g *Game) {
		g.legalOnly = legal
	}
}

// New creates a game at the standard starting position.
func New(opts ...Option) *Game {
	g := &Game{seen: hashing.NewRepetitionTable()}
	for _, opt := range opts {
		opt(g)
	}
	g.setBoard(engine.NewInitialBoard())
	return g
}

// NewFromFEN creates a game from position text.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	board, err := engine.Decode(fen)
	if err != nil {
		return nil, err
	}
	g := New(opts...)
	g.seen.Reset()
	g.setBoard(board)
	return g, nil
}

func (g *Game) setBoard(board *chess.Board) {
	g.board = board
	g.candidates = nil
	g.seen.Add(hashing.GenerateZobristHash(board))
}

// SideToMove returns the colour to move.
func (g *Game) SideToMove() chess.Colour {
	return g.board.SideToMove
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// PieceAt returns the piece at the given grid position.
func (g *Game) PieceAt(row, file int) (chess.Piece, error) {
	return g.board.PieceAt(row, file)
}

// FEN returns the current position text.
func (g *Game) FEN() string {
	return engine.Encode(g.board)
}

// String returns the plain board dump.
func (g *Game) String() string {
	return g.board.String()
}

// Ply returns the number of the next half-move, counting from 1. A
// fullmove number of 0 counts as 1.
func (g *Game) Ply() int {
	ply := 2*(int(g.board.FullmoveNumber)-1) + 1
	if g.board.SideToMove == chess.Black {
		ply++
	}
	return max(ply, 1)
}

// Clear empties every square. The side to move, castling rights, en passant
// target and clocks are kept. The previous position can be undone.
func (g *Game) Clear() {
	g.record()
	g.board.Clear()
	g.candidates = nil
	g.seen.Add(hashing.GenerateZobristHash(g.board))
}

// ListPossibleMoves lists the pseudo-legal moves of the side to move and
// keeps them as the candidates for the next MakeMove.
func (g *Game) ListPossibleMoves() string {
	g.candidates = engine.PseudoLegalMoves(g.board)
	return engine.FormatMoveList(g.candidates)
}

// ListLegalMoves is ListPossibleMoves with moves that leave the own king
// in check removed.
func (g *Game) ListLegalMoves() string {
	g.candidates = engine.LegalMoves(g.board)
	return engine.FormatMoveList(g.candidates)
}

// ListMoves lists with the generator chosen by WithLegalOnly.
func (g *Game) ListMoves() string {
	if g.legalOnly {
		return g.ListLegalMoves()
	}
	return g.ListPossibleMoves()
}

// Candidates returns the moves of the last listing.
func (g *Game) Candidates() []chess.Move {
	return slices.Clone(g.candidates)
}

// MakeMove plays text, which must be one of the moves of the most recent
// listing, with an optional promotion letter. When nothing has been listed
// since the last change (a move, Restore, Undo, Redo or Clear), MakeMove
// runs ListMoves itself and checks text against that fresh listing rather
// than rejecting the move. It returns a description of the move.
func (g *Game) MakeMove(text string) (string, error) {
	if g.candidates == nil {
		g.ListMoves()
	}
	move, err := engine.FindMove(g.candidates, text)
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.Ply = g.Ply()
		}
		return "", err
	}

	next := g.board.Copy()
	if !engine.ApplyMove(next, move) {
		return "", &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text, Ply: g.Ply()}
	}
	if move.IsPromotion() && move.Promotion == chess.NoPieceType {
		move.Promotion = chess.Queen
	}

	g.record()
	g.setBoard(next)
	return move.Describe(), nil
}

// CreateMemento snapshots the current position.
func (g *Game) CreateMemento() Memento {
	return NewMemento(engine.Encode(g.board))
}

// Restore replaces the whole position with m. On error the game is left
// exactly as it was.
func (g *Game) Restore(m Memento) error {
	board, err := engine.Decode(m.String())
	if err != nil {
		return errors.Wrap(err, "restore")
	}
	g.record()
	g.setBoard(board)
	return nil
}

// Undo returns to the position before the last move, restore or clear.
func (g *Game) Undo() error {
	if len(g.undo) == 0 {
		return errors.Wrap(errors.ErrNoHistory, "undo")
	}
	prev := g.undo[len(g.undo)-1]
	board, err := engine.Decode(prev.String())
	if err != nil {
		return errors.Wrap(err, "undo")
	}
	g.undo = g.undo[:len(g.undo)-1]
	g.redo = append(g.redo, g.CreateMemento())
	g.seen.Remove(hashing.GenerateZobristHash(g.board))
	g.board = board
	g.candidates = nil
	return nil
}

// Redo replays the last undone change.
func (g *Game) Redo() error {
	if len(g.redo) == 0 {
		return errors.Wrap(errors.ErrNoHistory, "redo")
	}
	next := g.redo[len(g.redo)-1]
	board, err := engine.Decode(next.String())
	if err != nil {
		return errors.Wrap(err, "redo")
	}
	g.redo = g.redo[:len(g.redo)-1]
	g.undo = append(g.undo, g.CreateMemento())
	g.setBoard(board)
	return nil
}

// History returns how many steps can be undone and redone.
func (g *Game) History() (undo, redo int) {
	return len(g.undo), len(g.redo)
}

// Status classifies the current position, including threefold repetition
// along the line that led to it.
func (g *Game) Status() engine.Status {
	status := engine.Evaluate(g.board)
	if status.IsOver() {
		return status
	}
	if g.seen.Count(hashing.GenerateZobristHash(g.board)) >= 3 {
		return engine.ThreefoldRepetition
	}
	return status
}

// record pushes the current position onto the undo history and drops
// anything that could be redone.
func (g *Game) record() {
	g.undo = append(g.undo, g.CreateMemento())
	g.redo = nil
}
