package board

// Make/Unmake implement reversible move application via a pushed StateInfo
// stack (§4.6). Three behaviors documented as defects in the reference
// engine are intentionally fixed here rather than reproduced:
//
//  1. The reference's undo restored a captured piece only in its
//     "other moves" branch, missing promotion captures; here Unmake restores
//     the captured piece from StateInfo at the end, after the promotion and
//     castling branches, for every move whose capture flag is set.
//  2. The reference's make cleared the en-passant captured pawn twice; here
//     Make removes it exactly once, from the square behind the destination,
//     and Unmake puts that one pawn back on exactly that square, not the
//     mover's destination square.
//  3. The reference's undo of a black castle toggled White's occupancy
//     bitboard; here the rook is always restored within the mover's own
//     occupancy set.

// Make applies m to pos, pushing a StateInfo so Unmake can reverse it. It
// returns false (and leaves pos unchanged in logical effect, though the
// state stack has been popped back) if m leaves the mover's own king in
// check, per the pseudo-legal contract in §4.5/§4.6.
func (pos *Position) Make(m Move) bool {
	us := pos.Side
	them := us.Other()

	from := m.From()
	to := m.To()
	piece := m.Piece()

	st := StateInfo{
		CapturedPiece: NoPiece,
		Castle:        pos.Castle,
		EP:            pos.EP,
		HalfmoveClock: pos.HalfmoveClock,
		HashKey:       pos.Hash(),
	}

	pos.EP = NoSq

	if m.IsCapture() {
		if m.IsEnPassant() {
			capSq := to + epCaptureOffset(us)
			capPiece := MakePiece(them, Pawn)
			st.CapturedPiece = capPiece
			pos.removePiece(capSq, capPiece)
		} else {
			capPiece := pos.PieceAt(to)
			st.CapturedPiece = capPiece
			pos.removePiece(to, capPiece)
		}
	}

	pos.removePiece(from, piece)
	if promo := m.Promotion(); promo != NoPiece {
		pos.addPiece(to, promo)
	} else {
		pos.addPiece(to, piece)
	}

	if m.IsDoublePush() {
		pos.EP = (from + to) / 2 // the skipped square, regardless of push direction
	}

	if m.IsCastle() {
		pos.moveCastleRook(us, to)
	}

	pos.Castle &= castlingRightsMask[from]
	pos.Castle &= castlingRightsMask[to]

	if piece.Type() == Pawn || m.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if us == Black {
		pos.FullmoveNumber++
	}

	pos.Side = them
	pos.Ply++
	pos.stateStack = append(pos.stateStack, st)

	if pos.InCheck(us) {
		pos.Unmake(m)
		return false
	}
	return true
}

// Unmake reverses the most recently applied move m, restoring the exact
// prior state from the top of the StateInfo stack.
func (pos *Position) Unmake(m Move) {
	st := pos.stateStack[len(pos.stateStack)-1]
	pos.stateStack = pos.stateStack[:len(pos.stateStack)-1]

	pos.Side = pos.Side.Other()
	us := pos.Side

	from := m.From()
	to := m.To()
	piece := m.Piece()

	if m.IsCastle() {
		pos.unmoveCastleRook(us, to)
	}

	if promo := m.Promotion(); promo != NoPiece {
		pos.removePiece(to, promo)
	} else {
		pos.removePiece(to, piece)
	}
	pos.addPiece(from, piece)

	// Defect fix #1: only restore a captured piece when the move actually
	// captured one.
	if m.IsCapture() {
		if m.IsEnPassant() {
			// Defect fix #2: the captured pawn's original square is behind
			// the mover's destination, not the destination itself.
			capSq := to + epCaptureOffset(us)
			pos.addPiece(capSq, st.CapturedPiece)
		} else {
			pos.addPiece(to, st.CapturedPiece)
		}
	}

	pos.Castle = st.Castle
	pos.EP = st.EP
	pos.HalfmoveClock = st.HalfmoveClock
	pos.Ply--
	if us == Black {
		pos.FullmoveNumber--
	}
}

// epCaptureOffset gives the square delta from an en-passant target square to
// the captured pawn's square, for the side that just moved.
func epCaptureOffset(us Color) Square {
	if us == White {
		return 8 // captured black pawn sits one rank towards rank 1
	}
	return -8 // captured white pawn sits one rank towards rank 8
}

// moveCastleRook relocates the rook during a castling move's Make. to is the
// king's destination square.
func (pos *Position) moveCastleRook(us Color, to Square) {
	rook := MakePiece(us, Rook)
	switch to {
	case G1:
		pos.movePieceBit(H1, F1, rook)
	case C1:
		pos.movePieceBit(A1, D1, rook)
	case G8:
		pos.movePieceBit(H8, F8, rook)
	case C8:
		pos.movePieceBit(A8, D8, rook)
	}
}

// unmoveCastleRook is moveCastleRook's inverse, used by Unmake.
//
// Defect fix #3: the rook is always moved back within us's own occupancy
// bitboard; the reference engine's undo toggled White's occupancy when
// Black had castled.
func (pos *Position) unmoveCastleRook(us Color, to Square) {
	rook := MakePiece(us, Rook)
	switch to {
	case G1:
		pos.movePieceBit(F1, H1, rook)
	case C1:
		pos.movePieceBit(D1, A1, rook)
	case G8:
		pos.movePieceBit(F8, H8, rook)
	case C8:
		pos.movePieceBit(D8, A8, rook)
	}
}

// MakeNull applies a null move: flips the side to move and clears the
// en-passant square, without touching any piece. Used by search drivers
// that want a null-move heuristic; the core itself does not use it.
func (pos *Position) MakeNull() StateInfo {
	st := StateInfo{Castle: pos.Castle, EP: pos.EP, HalfmoveClock: pos.HalfmoveClock, CapturedPiece: NoPiece}
	pos.EP = NoSq
	pos.Side = pos.Side.Other()
	pos.Ply++
	return st
}

// UnmakeNull reverses MakeNull.
func (pos *Position) UnmakeNull(st StateInfo) {
	pos.Side = pos.Side.Other()
	pos.EP = st.EP
	pos.Castle = st.Castle
	pos.HalfmoveClock = st.HalfmoveClock
	pos.Ply--
}
