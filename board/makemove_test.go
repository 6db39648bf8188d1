package board

import "testing"

// TestMakeUnmakeRoundTrip walks every pseudo-legal move from a handful of
// positions and verifies that Make followed by Unmake restores the
// position exactly, including occupancy bitboards, rights, and counters.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		before := snapshot(pos)

		var list MoveList
		GenerateMoves(pos, &list, AllMoves)
		for _, m := range list.Slice() {
			legal := pos.Make(m)
			if legal {
				pos.Unmake(m)
			}
			after := snapshot(pos)
			if after != before {
				t.Fatalf("fen %q, move %s (legal=%v): position not restored\n before=%+v\n after =%+v",
					fen, m, legal, before, after)
			}
		}
	}
}

type posSnapshot struct {
	pieceBB [12]Bitboard
	occ     [3]Bitboard
	side    Color
	ep      Square
	castle  CastlingRights
	half    int
	full    int
	ply     int
}

func snapshot(pos *Position) posSnapshot {
	return posSnapshot{
		pieceBB: pos.pieceBB,
		occ:     pos.occ,
		side:    pos.Side,
		ep:      pos.EP,
		castle:  pos.Castle,
		half:    pos.HalfmoveClock,
		full:    pos.FullmoveNumber,
		ply:     pos.Ply,
	}
}

// TestEnPassantCaptureRemovesExactlyOnePawn guards defect fix #2: undoing an
// en-passant capture must put the captured pawn back on its own square, not
// wherever the capturing pawn ended up, and must not duplicate it.
func TestEnPassantCaptureRemovesExactlyOnePawn(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := PopCount(pos.OccBoth())

	from, _ := ParseSquare("e5")
	to, _ := ParseSquare("f6")
	m := NewMove(from, to, WP, NoPiece, true, false, true, false)

	if !pos.Make(m) {
		t.Fatal("expected en-passant capture to be legal")
	}
	afterMake := PopCount(pos.OccBoth())
	if afterMake != before-1 {
		t.Errorf("after en-passant capture: %d pieces, want %d", afterMake, before-1)
	}
	capturedSq, _ := ParseSquare("f5")
	if pos.PieceAt(capturedSq) != NoPiece {
		t.Errorf("captured pawn square %v still occupied after Make", capturedSq)
	}

	pos.Unmake(m)
	afterUnmake := PopCount(pos.OccBoth())
	if afterUnmake != before {
		t.Errorf("after Unmake: %d pieces, want %d", afterUnmake, before)
	}
	if pos.PieceAt(capturedSq) != BP {
		t.Errorf("captured pawn not restored to %v", capturedSq)
	}
}

// TestCastlingRookUndoUsesMoverColor guards defect fix #3: undoing a
// castle must restore the rook to the mover's own occupancy set, for both
// colors, not just the one the reference engine's buggy branch handled.
func TestCastlingRookUndoUsesMoverColor(t *testing.T) {
	for _, tc := range []struct {
		fen      string
		from, to string
		king     Piece
	}{
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "g1", WK},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8", "g8", BK},
	} {
		pos, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
		}
		before := snapshot(pos)

		from, _ := ParseSquare(tc.from)
		to, _ := ParseSquare(tc.to)
		m := NewMove(from, to, tc.king, NoPiece, false, false, false, true)

		if !pos.Make(m) {
			t.Fatalf("%s: expected castle to be legal", tc.fen)
		}
		pos.Unmake(m)
		after := snapshot(pos)
		if after != before {
			t.Errorf("%s: castle round trip mismatch\n before=%+v\n after =%+v", tc.fen, before, after)
		}
	}
}

// TestCapturedPieceOnlyRestoredOnCaptureMoves guards defect fix #1: a
// non-capturing move's StateInfo.CapturedPiece must never be written back.
func TestCapturedPieceOnlyRestoredOnCaptureMoves(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := snapshot(pos)

	from, _ := ParseSquare("e2")
	to, _ := ParseSquare("e4")
	m := NewMove(from, to, WP, NoPiece, false, true, false, false)

	if !pos.Make(m) {
		t.Fatal("expected e2e4 to be legal")
	}
	pos.Unmake(m)
	after := snapshot(pos)
	if after != before {
		t.Errorf("quiet move round trip mismatch\n before=%+v\n after =%+v", before, after)
	}
}
