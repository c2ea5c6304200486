package engine

import (
	"testing"

	"github.com/jtulayan/chessgo/internal/chess"
	"github.com/jtulayan/chessgo/internal/errors"
	"github.com/jtulayan/chessgo/internal/testutil"
)

func TestFormatMoveList(t *testing.T) {
	tests := []struct {
		name  string
		moves []chess.Move
		want  string
	}{
		{"empty", nil, ""},
		{"single", []chess.Move{{From: 52, To: 36}}, "e2e4"},
		{"several", []chess.Move{{From: 52, To: 36}, {From: 52, To: 44}, {From: 62, To: 45}}, "e2e4/e2e3/g1f3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, FormatMoveList(tt.moves), tt.want)
		})
	}
}

func TestFormatMoveList_NoFalseMatches(t *testing.T) {
	// Adjacent pairs must not combine into a move that was never listed.
	list := FormatMoveList([]chess.Move{{From: 52, To: 36}, {From: 36, To: 28}})
	testutil.AssertMoveSet(t, testutil.SplitMoveList(list), []string{"e2e4", "e4e5"})
	testutil.AssertNotContains(t, list, "e4e4")
}

func TestListContains(t *testing.T) {
	list := "e2e4/e4e5/g1f3"
	tests := []struct {
		text string
		want bool
	}{
		{"e2e4", true},
		{"g1f3", true},
		{"e4e4", false},
		{"2e4e", false},
		{"e2e4/e4e5", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ListContains(list, tt.text); got != tt.want {
			t.Errorf("ListContains(%q, %q) = %v; want %v", list, tt.text, got, tt.want)
		}
	}
	if ListContains("", "") {
		t.Error("empty list should contain nothing")
	}
}

func TestParseMoveText(t *testing.T) {
	tests := []struct {
		text      string
		wantFrom  string
		wantTo    string
		wantPromo chess.PieceType
		wantErr   bool
	}{
		{text: "e2e4", wantFrom: "e2", wantTo: "e4"},
		{text: "a7a8q", wantFrom: "a7", wantTo: "a8", wantPromo: chess.Queen},
		{text: "a7a8r", wantFrom: "a7", wantTo: "a8", wantPromo: chess.Rook},
		{text: "h2h1b", wantFrom: "h2", wantTo: "h1", wantPromo: chess.Bishop},
		{text: "h2h1n", wantFrom: "h2", wantTo: "h1", wantPromo: chess.Knight},
		{text: "a7a8k", wantErr: true},
		{text: "a7a8Q", wantErr: true},
		{text: "e2", wantErr: true},
		{text: "", wantErr: true},
		{text: "e2e9", wantErr: true},
		{text: "i2e4", wantErr: true},
		{text: "e2e4q5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			from, to, promo, err := ParseMoveText(tt.text)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidFormat)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, from, sq(t, tt.wantFrom))
			testutil.AssertEqual(t, to, sq(t, tt.wantTo))
			testutil.AssertEqual(t, promo, tt.wantPromo)
		})
	}
}

func TestFindMove(t *testing.T) {
	board := mustDecode(t, "1r2k3/P7/8/8/8/8/4P3/4K3 w - - 0 1")
	candidates := PseudoLegalMoves(board)

	tests := []struct {
		name      string
		text      string
		wantPromo chess.PieceType
		wantErr   bool
	}{
		{name: "plain move", text: "e2e4"},
		{name: "promotion defaults to queen", text: "a7a8", wantPromo: chess.Queen},
		{name: "capture promotion to knight", text: "a7b8n", wantPromo: chess.Knight},
		{name: "suffix on a non-promoting move", text: "e2e4q", wantErr: true},
		{name: "not listed", text: "e2e5", wantErr: true},
		{name: "garbage", text: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, err := FindMove(candidates, tt.text)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
				var moveErr *errors.MoveError
				if !errors.As(err, &moveErr) {
					t.Fatalf("error %T is not a *MoveError", err)
				}
				testutil.AssertEqual(t, moveErr.MoveText, tt.text)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, move.Text(), tt.text[:4])
			testutil.AssertEqual(t, move.Promotion, tt.wantPromo)
		})
	}
}

func TestExpandPromotions(t *testing.T) {
	board := mustDecode(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var got []string
	for _, m := range ExpandPromotions(GenerateFrom(board, sq(t, "a7"))) {
		got = append(got, m.LongText())
	}
	testutil.AssertEqual(t, got, []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"})
}
