// Package search provides the bookkeeping scaffolding an iterative-deepening
// search driver needs around board.GenerateMoves and board.Position's
// make/unmake: move ordering, killer and history tables, a triangular PV
// table, and the time/depth/node limits a UCI-style front end would supply.
// It does not implement a transposition table, an opening book, tablebase
// probing, or a UCI front end; those are explicitly out of scope.
package search

// Limits mirrors the parameters a GUI hands a search over the UCI "go"
// command: per-side clock state, a move/depth/node ceiling, or an
// open-ended "search until told to stop" request. A caller not using any
// particular field leaves it at its zero value.
type Limits struct {
	WhiteTime      int // milliseconds remaining for White
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MovesToGo      int

	Depth    int // hard depth ceiling; 0 means unlimited
	MoveTime int // fixed milliseconds for this move; 0 means unlimited
	Nodes    uint64
	Infinite bool
}

// NoLimit returns a Limits with no depth, time, or node ceiling — the
// driver is expected to stop the search externally.
func NoLimit() Limits {
	return Limits{Infinite: true}
}

// TimeFor returns the clock and increment for the side to move.
func (l Limits) TimeFor(whiteToMove bool) (time, increment int) {
	if whiteToMove {
		return l.WhiteTime, l.WhiteIncrement
	}
	return l.BlackTime, l.BlackIncrement
}
