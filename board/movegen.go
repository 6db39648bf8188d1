package board

// Pseudo-legal move generation (§4.5). Generated moves may leave the mover's
// own king in check; Make is responsible for rejecting those (§4.6 step 10).

// GenMode selects which subset of pseudo-legal moves to generate.
type GenMode int

const (
	// AllMoves generates every pseudo-legal move: quiet and noisy alike.
	AllMoves GenMode = iota
	// CapturesOnly generates captures, en-passant captures, and capture
	// promotions only (used by quiescence search).
	CapturesOnly
)

// GenerateMoves appends every pseudo-legal move for the side to move into l.
func GenerateMoves(pos *Position, l *MoveList, mode GenMode) {
	genPawnMoves(pos, l, mode)
	genKnightMoves(pos, l, mode)
	genSliderMoves(pos, l, mode, Bishop)
	genSliderMoves(pos, l, mode, Rook)
	genSliderMoves(pos, l, mode, Queen)
	genKingMoves(pos, l, mode)
	if mode == AllMoves {
		genCastleMoves(pos, l)
	}
}

var promoTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func genPawnMoves(pos *Position, l *MoveList, mode GenMode) {
	us := pos.Side
	them := us.Other()
	pawn := MakePiece(us, Pawn)
	occBoth := pos.OccBoth()
	theirs := pos.Occ(them)

	var forward int
	var startRankMask, promoRankMask Bitboard
	if us == White {
		forward = -8 // rank index decreases towards rank 8 (internal rank 0)
		startRankMask = RankMasks[6]  // rank 2
		promoRankMask = RankMasks[0]  // rank 8
	} else {
		forward = 8
		startRankMask = RankMasks[1] // rank 7
		promoRankMask = RankMasks[7] // rank 1
	}

	bb := pos.PieceBB(pawn)
	for bb != 0 {
		from := Square(PopLsb(&bb))
		fromBit := Bitboard(1) << uint(from)
		one := from + Square(forward)

		if mode == AllMoves && one >= 0 && one < 64 && !GetBit(occBoth, int(one)) {
			addPawnAdvanceOrPromo(l, pos, from, one, pawn, promoRankMask)

			if fromBit&startRankMask != 0 {
				two := one + Square(forward)
				if !GetBit(occBoth, int(two)) {
					l.Add(NewMove(from, two, pawn, NoPiece, false, true, false, false))
				}
			}
		}

		atk := PawnAttacks(us, from) & theirs
		for atk != 0 {
			to := Square(PopLsb(&atk))
			addPawnCaptureOrPromo(l, from, to, pawn, promoRankMask)
		}

		if pos.EP != NoSq && PawnAttacks(us, from)&(Bitboard(1)<<uint(pos.EP)) != 0 {
			l.Add(NewMove(from, pos.EP, pawn, NoPiece, true, false, true, false))
		}
	}
}

func addPawnAdvanceOrPromo(l *MoveList, pos *Position, from, to Square, pawn Piece, promoRankMask Bitboard) {
	toBit := Bitboard(1) << uint(to)
	if toBit&promoRankMask != 0 {
		for _, pt := range promoTypes {
			l.Add(NewMove(from, to, pawn, MakePiece(pawn.Color(), pt), false, false, false, false))
		}
		return
	}
	l.Add(NewMove(from, to, pawn, NoPiece, false, false, false, false))
}

func addPawnCaptureOrPromo(l *MoveList, from, to Square, pawn Piece, promoRankMask Bitboard) {
	toBit := Bitboard(1) << uint(to)
	if toBit&promoRankMask != 0 {
		for _, pt := range promoTypes {
			l.Add(NewMove(from, to, pawn, MakePiece(pawn.Color(), pt), true, false, false, false))
		}
		return
	}
	l.Add(NewMove(from, to, pawn, NoPiece, true, false, false, false))
}

func genKnightMoves(pos *Position, l *MoveList, mode GenMode) {
	us := pos.Side
	piece := MakePiece(us, Knight)
	own := pos.Occ(us)
	theirs := pos.Occ(us.Other())

	bb := pos.PieceBB(piece)
	for bb != 0 {
		from := Square(PopLsb(&bb))
		targets := KnightAttacks(from) &^ own
		if mode == CapturesOnly {
			targets &= theirs
		}
		addSimpleMoves(l, from, piece, targets, theirs)
	}
}

func genKingMoves(pos *Position, l *MoveList, mode GenMode) {
	us := pos.Side
	piece := MakePiece(us, King)
	own := pos.Occ(us)
	theirs := pos.Occ(us.Other())

	from := pos.KingSquare(us)
	targets := KingAttacks(from) &^ own
	if mode == CapturesOnly {
		targets &= theirs
	}
	addSimpleMoves(l, from, piece, targets, theirs)
}

func genSliderMoves(pos *Position, l *MoveList, mode GenMode, pt PieceType) {
	us := pos.Side
	piece := MakePiece(us, pt)
	own := pos.Occ(us)
	theirs := pos.Occ(us.Other())
	occ := pos.OccBoth()

	bb := pos.PieceBB(piece)
	for bb != 0 {
		from := Square(PopLsb(&bb))
		var targets Bitboard
		switch pt {
		case Bishop:
			targets = GetBishopAttacks(from, occ)
		case Rook:
			targets = GetRookAttacks(from, occ)
		case Queen:
			targets = GetQueenAttacks(from, occ)
		}
		targets &^= own
		if mode == CapturesOnly {
			targets &= theirs
		}
		addSimpleMoves(l, from, piece, targets, theirs)
	}
}

// addSimpleMoves emits one move per bit of targets for a non-pawn piece,
// marking the capture flag against theirs.
func addSimpleMoves(l *MoveList, from Square, piece Piece, targets, theirs Bitboard) {
	for targets != 0 {
		to := Square(PopLsb(&targets))
		capture := GetBit(theirs, int(to))
		l.Add(NewMove(from, to, piece, NoPiece, capture, false, false, false))
	}
}

// genCastleMoves emits a castle when the right bit is set, the squares
// between king and rook are empty, and neither the king's square nor the
// square it crosses is attacked; whether the landing square is attacked is
// left to Make's post-move legality check (§4.6).
func genCastleMoves(pos *Position, l *MoveList) {
	us := pos.Side
	occ := pos.OccBoth()

	if us == White {
		if pos.Castle&CastleWK != 0 && !GetBit(occ, int(F1)) && !GetBit(occ, int(G1)) &&
			!pos.IsSquareAttacked(E1, Black) && !pos.IsSquareAttacked(F1, Black) {
			l.Add(NewMove(E1, G1, WK, NoPiece, false, false, false, true))
		}
		if pos.Castle&CastleWQ != 0 && !GetBit(occ, int(D1)) && !GetBit(occ, int(C1)) && !GetBit(occ, int(B1)) &&
			!pos.IsSquareAttacked(E1, Black) && !pos.IsSquareAttacked(D1, Black) {
			l.Add(NewMove(E1, C1, WK, NoPiece, false, false, false, true))
		}
	} else {
		if pos.Castle&CastleBK != 0 && !GetBit(occ, int(F8)) && !GetBit(occ, int(G8)) &&
			!pos.IsSquareAttacked(E8, White) && !pos.IsSquareAttacked(F8, White) {
			l.Add(NewMove(E8, G8, BK, NoPiece, false, false, false, true))
		}
		if pos.Castle&CastleBQ != 0 && !GetBit(occ, int(D8)) && !GetBit(occ, int(C8)) && !GetBit(occ, int(B8)) &&
			!pos.IsSquareAttacked(E8, White) && !pos.IsSquareAttacked(D8, White) {
			l.Add(NewMove(E8, C8, BK, NoPiece, false, false, false, true))
		}
	}
}
