package search

import "github.com/shintakezou/gargantua/board"

// HistoryTable scores quiet moves by how often they have caused a beta
// cutoff in the past, indexed by the moving piece and its destination
// square, matching the reference engine's history[12][64].
type HistoryTable struct {
	scores [12][64]int
}

// Get returns the accumulated history score for piece p moving to sq.
func (h *HistoryTable) Get(p board.Piece, sq board.Square) int {
	return h.scores[p][sq]
}

// Add increases the history score for p moving to sq by depth*depth, the
// standard depth-weighted bonus that favors cutoffs found deeper in the
// tree.
func (h *HistoryTable) Add(p board.Piece, sq board.Square, depth int) {
	h.scores[p][sq] += depth * depth
}

// Clear resets every history score, typically done once per new search so
// history from an unrelated position does not bias ordering.
func (h *HistoryTable) Clear() {
	for p := range h.scores {
		for sq := range h.scores[p] {
			h.scores[p][sq] = 0
		}
	}
}
