package engine

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/errors"
)

// MoveSeparator separates entries of a move list.
const MoveSeparator = "/"

// promotionLetters maps an optional fifth move character to the piece a
// pawn becomes.
var promotionLetters = map[byte]chess.PieceType{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

// FormatMoveList joins the four-character texts of moves with "/", in the
// order given. An empty list formats as "".
func FormatMoveList(moves []chess.Move) string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.Text()
	}
	return strings.Join(texts, MoveSeparator)
}

// ListContains reports whether text is an entry of a formatted move list.
// Only whole entries match.
func ListContains(list, text string) bool {
	if list == "" {
		return false
	}
	return slices.Contains(strings.Split(list, MoveSeparator), text)
}

// ParseMoveText splits "e2e4" or "e7e8n" into origin, destination and an
// optional promotion piece (NoPieceType when absent).
func ParseMoveText(text string) (from, to chess.Square, promo chess.PieceType, err error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.NoPieceType, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    "move",
			Input:    text,
			Expected: "origin and destination coordinates",
		}
	}
	if from, err = chess.CoordinateToSquare(text[0:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoPieceType, err
	}
	if to, err = chess.CoordinateToSquare(text[2:4]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoPieceType, err
	}
	if len(text) == 5 {
		var ok bool
		if promo, ok = promotionLetters[text[4]]; !ok {
			return chess.NoSquare, chess.NoSquare, chess.NoPieceType, &errors.ParseError{
				Err:      errors.ErrInvalidFormat,
				Field:    "promotion",
				Input:    text[4:],
				Expected: "one of q, r, b, n",
			}
		}
	}
	return from, to, promo, nil
}

// FindMove looks up a move text among candidates. A promotion suffix is
// only accepted on a promoting move and replaces the default queen.
// Anything not found is reported as a *errors.MoveError wrapping
// errors.ErrIllegalMove.
func FindMove(candidates []chess.Move, text string) (chess.Move, error) {
	from, to, promo, err := ParseMoveText(text)
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text}
	}

	i := slices.IndexFunc(candidates, func(m chess.Move) bool {
		return m.From == from && m.To == to
	})
	if i < 0 {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text}
	}

	move := candidates[i]
	if promo != chess.NoPieceType {
		if !move.IsPromotion() {
			return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text}
		}
		move.Promotion = promo
	}
	return move, nil
}

// ExpandPromotions returns moves with each promoting move repeated once
// per promotion piece, queen first.
func ExpandPromotions(moves []chess.Move) []chess.Move {
	expanded := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if !m.IsPromotion() {
			expanded = append(expanded, m)
			continue
		}
		for _, pt := range []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
			m.Promotion = pt
			expanded = append(expanded, m)
		}
	}
	return expanded
}
