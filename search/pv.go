package search

import "github.com/shintakezou/gargantua/board"

// MaxPly bounds every per-ply table in this package: the PV table, the
// killer table, and the ply-indexed recursion depth a driver can reach.
const MaxPly = 64

// PVTable is the triangular principal-variation table: pvTable[ply] holds
// the best line found from ply onward, and pvLength[ply] is how much of
// that row is populated. A driver updates it from the leaves upward as
// alpha-beta backs up a new best line.
type PVTable struct {
	table  [MaxPly][MaxPly]board.Move
	length [MaxPly]int
}

// Clear resets the table before a new search.
func (pv *PVTable) Clear() {
	for i := range pv.length {
		pv.length[i] = 0
	}
}

// Init records that ply has no continuation yet (pv.length[ply] == ply),
// matching the reference engine's pv_length initialization at the start of
// each node.
func (pv *PVTable) Init(ply int) {
	pv.length[ply] = ply
}

// Store records m as the best move at ply and copies the continuation from
// ply+1 behind it, producing the triangular shape.
func (pv *PVTable) Store(ply int, m board.Move) {
	pv.table[ply][ply] = m
	for next := ply + 1; next < pv.length[ply+1]; next++ {
		pv.table[ply][next] = pv.table[ply+1][next]
	}
	pv.length[ply] = pv.length[ply+1]
}

// Line returns the principal variation found at the root (ply 0).
func (pv *PVTable) Line() []board.Move {
	n := pv.length[0]
	if n > MaxPly {
		n = MaxPly
	}
	return pv.table[0][:n]
}
