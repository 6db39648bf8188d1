package search

import (
	"testing"

	"github.com/shintakezou/gargantua/board"
)

func TestMVVLVAFavorsCheapAttackerOnBestVictim(t *testing.T) {
	pawnTakesQueen := MVVLVA(board.WP, board.BQ)
	knightTakesQueen := MVVLVA(board.WN, board.BQ)
	pawnTakesPawn := MVVLVA(board.WP, board.BP)

	if pawnTakesQueen <= knightTakesQueen {
		t.Errorf("pawn-takes-queen (%d) should outscore knight-takes-queen (%d)", pawnTakesQueen, knightTakesQueen)
	}
	if pawnTakesQueen <= pawnTakesPawn {
		t.Errorf("pawn-takes-queen (%d) should outscore pawn-takes-pawn (%d)", pawnTakesQueen, pawnTakesPawn)
	}
}

func TestScoreMoveOrdersPVAboveEverything(t *testing.T) {
	from, _ := board.ParseSquare("e2")
	to, _ := board.ParseSquare("e4")
	m := board.NewMove(from, to, board.WP, board.NoPiece, false, true, false, false)

	var killers KillerTable
	var history HistoryTable
	history.Add(board.WP, to, 10) // give the quiet move a large history score

	score := ScoreMove(m, 0, m, &killers, &history, board.NoPiece)
	if score != scorePV {
		t.Errorf("ScoreMove with m as the PV move = %d, want %d", score, scorePV)
	}
}

func TestScoreMoveFallsBackToHistoryForQuietMoves(t *testing.T) {
	from, _ := board.ParseSquare("g1")
	to, _ := board.ParseSquare("f3")
	m := board.NewMove(from, to, board.WN, board.NoPiece, false, false, false, false)

	var killers KillerTable
	var history HistoryTable
	history.Add(board.WN, to, 4)

	got := ScoreMove(m, 0, 0, &killers, &history, board.NoPiece)
	want := history.Get(board.WN, to)
	if got != want {
		t.Errorf("ScoreMove = %d, want history score %d", got, want)
	}
}

func TestOrderMovesSortsDescending(t *testing.T) {
	moves := []board.Move{1, 2, 3, 4}
	scores := []int{10, 50, 30, 20}
	OrderMoves(moves, scores)

	wantOrder := []board.Move{2, 3, 4, 1}
	for i, m := range moves {
		if m != wantOrder[i] {
			t.Errorf("moves[%d] = %v, want %v", i, m, wantOrder[i])
		}
	}
}
