package search

import (
	"testing"

	"github.com/shintakezou/gargantua/board"
)

func TestPVTableTriangularStore(t *testing.T) {
	var pv PVTable
	pv.Clear()

	m0 := board.Move(1)
	m1 := board.Move(2)
	m2 := board.Move(3)

	// Mimic the nesting order a real search produces: the deepest node
	// (ply 3) has no continuation of its own, then each ancestor stores its
	// move and inherits the child's continuation.
	pv.Init(3)
	pv.Init(2)
	pv.Store(2, m2)
	pv.Init(1)
	pv.Store(1, m1)
	pv.Init(0)
	pv.Store(0, m0)

	line := pv.Line()
	if len(line) != 3 {
		t.Fatalf("PV line length = %d, want 3", len(line))
	}
	want := []board.Move{m0, m1, m2}
	for i, m := range line {
		if m != want[i] {
			t.Errorf("line[%d] = %v, want %v", i, m, want[i])
		}
	}
}

func TestPVTableClearResetsLengths(t *testing.T) {
	var pv PVTable
	pv.Init(0)
	pv.Store(0, board.Move(9))
	pv.Clear()
	if len(pv.Line()) != 0 {
		t.Errorf("PV line after Clear has length %d, want 0", len(pv.Line()))
	}
}
