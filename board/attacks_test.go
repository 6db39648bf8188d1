package board

import "testing"

// TestMagicAttacksMatchOnTheFly checks the magic-bitboard lookup against the
// naive ray-walking computation for every square and a sample of random
// occupancies, since a wrong magic number or a wrong relevant-bits count
// would otherwise only show up as a subtle perft mismatch.
func TestMagicAttacksMatchOnTheFly(t *testing.T) {
	rng := NewXorshift32(12345)
	for sq := 0; sq < 64; sq++ {
		for i := 0; i < 64; i++ {
			occ := Bitboard(rng.Next64())

			gotBishop := GetBishopAttacks(Square(sq), occ)
			wantBishop := bishopAttacksOnTheFly(Square(sq), occ)
			if gotBishop != wantBishop {
				t.Fatalf("bishop attacks from %v with occ %#x: got %#x, want %#x", Square(sq), uint64(occ), uint64(gotBishop), uint64(wantBishop))
			}

			gotRook := GetRookAttacks(Square(sq), occ)
			wantRook := rookAttacksOnTheFly(Square(sq), occ)
			if gotRook != wantRook {
				t.Fatalf("rook attacks from %v with occ %#x: got %#x, want %#x", Square(sq), uint64(occ), uint64(gotRook), uint64(wantRook))
			}
		}
	}
}

func TestIsSquareAttackedByKnight(t *testing.T) {
	pos, err := ParseFEN("7k/8/8/3N4/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	b6, _ := ParseSquare("b6")
	e7, _ := ParseSquare("e7")
	if !pos.IsSquareAttacked(b6, White) {
		t.Error("knight on d5 should attack b6")
	}
	if !pos.IsSquareAttacked(e7, White) {
		t.Error("knight on d5 should attack e7")
	}
}

func TestIsSquareAttackedByPawn(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3p4/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	c4, _ := ParseSquare("c4")
	e4, _ := ParseSquare("e4")
	if !pos.IsSquareAttacked(c4, Black) {
		t.Error("black pawn on d5 should attack c4")
	}
	if !pos.IsSquareAttacked(e4, Black) {
		t.Error("black pawn on d5 should attack e4")
	}
}

func TestIsSquareAttackedBySlider(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	d1, _ := ParseSquare("d1")
	a8, _ := ParseSquare("a8")
	if !pos.IsSquareAttacked(d1, White) {
		t.Error("rook on a1 should attack d1 along rank 1")
	}
	if !pos.IsSquareAttacked(a8, White) {
		t.Error("rook on a1 should attack a8 along the a-file")
	}
}

func TestInCheckDetection(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.InCheck(White) {
		t.Error("white king on e1 should be in check from the rook on e2")
	}
	if pos.InCheck(Black) {
		t.Error("black king on e8 is not in check")
	}
}
