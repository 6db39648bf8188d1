package search

import "github.com/shintakezou/gargantua/board"

// KillerTable holds, per ply, the two most recent quiet moves that caused a
// beta cutoff — moves worth trying early at sibling nodes even without a
// capture to recommend them.
type KillerTable struct {
	moves [MaxPly][2]board.Move
}

// IsKiller reports whether m is killer slot-index at ply.
func (k *KillerTable) IsKiller(ply, slot int, m board.Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	return k.moves[ply][slot] == m
}

// Insert records m as the newest killer at ply, demoting the previous
// primary killer to the secondary slot (never storing the same move twice).
func (k *KillerTable) Insert(ply int, m board.Move) {
	if ply < 0 || ply >= MaxPly || k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// Clear empties every killer slot, typically done once per new search.
func (k *KillerTable) Clear() {
	for i := range k.moves {
		k.moves[i][0] = 0
		k.moves[i][1] = 0
	}
}
