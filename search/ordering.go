package search

import "github.com/shintakezou/gargantua/board"

// Move-ordering score offsets, matching the reference engine's scoreMove
// priority ladder exactly: a PV move from a prior iteration is tried first,
// then captures by MVV/LVA, then quiet promotions, then the two killer
// moves for this ply, then history-heuristic quiet moves.
const (
	scorePV          = 20000
	scoreCaptureBase = 10000
	scoreQuietPromo  = 10000
	scoreKiller0     = 9000
	scoreKiller1     = 8000
)

// mvvLva[attacker][victim] is indexed by board.Piece (0..11, White then
// Black pieces of the same six kinds), carrying the reference engine's
// values twice over — once for White attackers/victims, once for Black —
// since board.Piece already encodes color and the table is looked up
// directly rather than reduced to PieceType first.
var mvvLva = [12][12]int{
	{105, 205, 305, 405, 505, 605, 105, 205, 305, 405, 505, 605},
	{104, 204, 304, 404, 504, 604, 104, 204, 304, 404, 504, 604},
	{103, 203, 303, 403, 503, 603, 103, 203, 303, 403, 503, 603},
	{102, 202, 302, 402, 502, 602, 102, 202, 302, 402, 502, 602},
	{101, 201, 301, 401, 501, 601, 101, 201, 301, 401, 501, 601},
	{100, 200, 300, 400, 500, 600, 100, 200, 300, 400, 500, 600},
	{105, 205, 305, 405, 505, 605, 105, 205, 305, 405, 505, 605},
	{104, 204, 304, 404, 504, 604, 104, 204, 304, 404, 504, 604},
	{103, 203, 303, 403, 503, 603, 103, 203, 303, 403, 503, 603},
	{102, 202, 302, 402, 502, 602, 102, 202, 302, 402, 502, 602},
	{101, 201, 301, 401, 501, 601, 101, 201, 301, 401, 501, 601},
	{100, 200, 300, 400, 500, 600, 100, 200, 300, 400, 500, 600},
}

// MVVLVA returns the most-valuable-victim/least-valuable-attacker score for
// a move capturing victim with attacker.
func MVVLVA(attacker, victim board.Piece) int {
	return mvvLva[attacker][victim]
}

// ScoreMove assigns m a priority for move-ordering, following the reference
// engine's scoreMove ladder: a PV move from the previous iteration outranks
// everything; captures are scored by MVV/LVA; quiet promotions and the two
// killer slots for ply follow; any other quiet move falls back to its
// history-heuristic score.
func ScoreMove(m board.Move, ply int, pvMove board.Move, killers *KillerTable, history *HistoryTable, victim board.Piece) int {
	if pvMove != 0 && m == pvMove {
		return scorePV
	}
	if m.IsCapture() {
		return MVVLVA(m.Piece(), victim) + scoreCaptureBase
	}
	if m.IsPromotion() {
		return scoreQuietPromo
	}
	if killers.IsKiller(ply, 0, m) {
		return scoreKiller0
	}
	if killers.IsKiller(ply, 1, m) {
		return scoreKiller1
	}
	return history.Get(m.Piece(), m.To())
}

// OrderMoves sorts list in place by descending score, an insertion sort
// matching the reference engine's orderNextMove selection-sort-per-pick
// approach but applied once up front rather than lazily — the move counts
// here are small enough (<256) that the constant-factor difference does
// not matter and a single sorted pass is simpler to reason about.
func OrderMoves(moves []board.Move, scores []int) {
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && scores[j-1] < scores[j]; j-- {
			scores[j-1], scores[j] = scores[j], scores[j-1]
			moves[j-1], moves[j] = moves[j], moves[j-1]
		}
	}
}
