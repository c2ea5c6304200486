package engine

import (
	"context"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/errors"
	"github.com/jtulayan/chessgo/internal/worker"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions are counted once per promotion piece.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := ExpandPromotions(LegalMoves(board))
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Copy()
		ApplyMove(child, m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// Divide runs Perft below every root move, one root move per work item on
// a pool of the given size. Entries come back in root move order. If ctx
// is cancelled the pool is stopped and ctx.Err() is returned.
func Divide(ctx context.Context, board *chess.Board, depth, workers int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, &errors.RangeError{What: "depth", Value: depth}
	}

	roots := ExpandPromotions(LegalMoves(board))
	pool := worker.NewPool(perftItem, worker.WithWorkers(workers), worker.WithBufferSize(len(roots)+1))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range roots {
			child := board.Copy()
			ApplyMove(child, m)
			item := worker.WorkItem{Board: child, Move: m, Depth: depth - 1, Index: i}
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	entries := make([]DivideEntry, len(roots))
	done := ctx.Done()
	for result := range pool.Results() {
		entries[result.Index] = DivideEntry{Move: result.Move, Nodes: result.Nodes}
		select {
		case <-done:
			pool.Stop()
			done = nil
		default:
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func perftItem(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: Perft(item.Board, item.Depth),
	}
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
