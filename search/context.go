package search

import "github.com/shintakezou/gargantua/board"

// Evaluator scores a position from the side-to-move's perspective. The core
// does not ship a concrete implementation — no handcrafted evaluation and
// no NNUE network — this interface exists purely as the seam a driver
// plugs an evaluator into.
type Evaluator interface {
	Evaluate(pos *board.Position) int
}

// Context aggregates the per-search state an iterative-deepening driver
// threads through alpha-beta: node counters, the killer and history
// tables, the PV table, the active limits, and a stop flag a time-check
// callback can set. It mirrors the reference engine's scattered globals
// (ply, nodes, pv_table, killers, history, stopped) collected into one
// struct, per the redesign called for when those globals made the search
// hard to reason about across goroutines.
type Context struct {
	Eval   Evaluator
	Limits Limits

	Nodes    uint64
	Ply      int
	Stopped  bool

	PV      PVTable
	Killers KillerTable
	History HistoryTable

	followPV  bool
	scorePV   bool
}

// NewContext returns a Context wired to eval, ready for a fresh search.
func NewContext(eval Evaluator) *Context {
	return &Context{Eval: eval}
}

// Reset clears all per-search tables and counters before a new root search,
// keeping the limits and evaluator already configured.
func (c *Context) Reset() {
	c.Nodes = 0
	c.Ply = 0
	c.Stopped = false
	c.PV.Clear()
	c.Killers.Clear()
	c.History.Clear()
	c.followPV = false
	c.scorePV = false
}

// EnablePVScoring turns on PV-first ordering for this iteration when the
// root PV's move for the current ply is among moves, matching the reference
// engine's enablePV_scoring: once the PV move no longer matches, ordering
// falls back to MVV/LVA and history for the remainder of the line.
func (c *Context) EnablePVScoring(moves []board.Move) {
	c.followPV = false
	if c.PV.length[0] <= c.Ply {
		return
	}
	pvMove := c.PV.table[0][c.Ply]
	for _, m := range moves {
		if m == pvMove {
			c.followPV = true
			c.scorePV = true
			return
		}
	}
}

// pvMoveAt returns the PV move recorded for the current ply when PV
// ordering is active, or the zero Move otherwise.
func (c *Context) pvMoveAt() board.Move {
	if !c.scorePV {
		return 0
	}
	c.scorePV = false
	return c.PV.table[0][c.Ply]
}
