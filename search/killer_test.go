package search

import (
	"testing"

	"github.com/shintakezou/gargantua/board"
)

func TestKillerInsertAndLookup(t *testing.T) {
	var k KillerTable
	m1 := board.Move(111)
	m2 := board.Move(222)

	k.Insert(3, m1)
	if !k.IsKiller(3, 0, m1) {
		t.Error("m1 should be the primary killer at ply 3")
	}

	k.Insert(3, m2)
	if !k.IsKiller(3, 0, m2) {
		t.Error("m2 should become the primary killer after a second insert")
	}
	if !k.IsKiller(3, 1, m1) {
		t.Error("m1 should be demoted to the secondary killer slot")
	}
}

func TestKillerInsertIgnoresDuplicate(t *testing.T) {
	var k KillerTable
	m := board.Move(42)
	k.Insert(1, m)
	k.Insert(1, m)
	if k.IsKiller(1, 1, m) {
		t.Error("inserting the same move twice should not duplicate it into slot 1")
	}
}

func TestKillerClear(t *testing.T) {
	var k KillerTable
	m := board.Move(7)
	k.Insert(0, m)
	k.Clear()
	if k.IsKiller(0, 0, m) {
		t.Error("Clear should remove previously inserted killers")
	}
}
