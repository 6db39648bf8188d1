package board

// MaxMoves is a capacity sufficient for any legal or pseudo-legal chess
// position (§3).
const MaxMoves = 256

// MoveList is a fixed-capacity buffer of packed moves plus a count, avoiding
// a heap allocation per call to GenerateMoves in hot search paths.
type MoveList struct {
	Moves [MaxMoves]Move
	Count int
}

// Add appends m to the list. The caller is responsible for not exceeding
// MaxMoves; no position can legally produce that many moves.
func (l *MoveList) Add(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated portion of the list.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.Count = 0 }
