package board

// occIndex identifies one of the three maintained occupancy sets.
const (
	occWhite = 0
	occBlack = 1
	occBoth  = 2
)

// StateInfo snapshots the irreversible part of a position so Unmake can
// restore it exactly: the captured piece (if any), castling rights, the
// en-passant square, the halfmove clock, and a position fingerprint. Make
// pushes one of these; Unmake pops it.
type StateInfo struct {
	CapturedPiece Piece
	Castle        CastlingRights
	EP            Square
	HalfmoveClock int
	HashKey       uint64
}

// Position is the full board state: twelve per-piece bitsets, the three
// derived occupancy sets, side to move, en-passant target, castling rights,
// move counters, search ply, and the undo history stack.
type Position struct {
	pieceBB [12]Bitboard
	occ     [3]Bitboard

	Side Color
	EP   Square

	Castle CastlingRights

	HalfmoveClock  int
	FullmoveNumber int

	Ply int

	stateStack []StateInfo
}

// NewPosition returns an empty position (no pieces, White to move, no
// castling rights, no en-passant square). Callers typically populate it via
// ParseFEN.
func NewPosition() *Position {
	return &Position{EP: NoSq, stateStack: make([]StateInfo, 0, 64)}
}

// PieceBB returns the bitboard for piece kind p.
func (pos *Position) PieceBB(p Piece) Bitboard { return pos.pieceBB[p] }

// Occ returns the occupancy bitboard for color c.
func (pos *Position) Occ(c Color) Bitboard { return pos.occ[c] }

// OccBoth returns the combined occupancy of both sides.
func (pos *Position) OccBoth() Bitboard { return pos.occ[occBoth] }

// PieceAt scans the twelve piece bitsets for the piece on sq, or returns
// NoPiece if the square is empty. Kept as a small linear scan, matching the
// reference engine's find-victim loop in makeMove/isSquareAttacked; callers
// doing this in a hot loop should prefer maintaining their own piece[64]
// array, which Position does not keep (the bitsets are the source of truth
// per §3).
func (pos *Position) PieceAt(sq Square) Piece {
	bit := Bitboard(1) << uint(sq)
	for p := WP; p <= BK; p++ {
		if pos.pieceBB[p]&bit != 0 {
			return p
		}
	}
	return NoPiece
}

// KingSquare returns the square of c's king. Panics if c has no king, which
// would violate the "exactly one king per side" invariant (§3).
func (pos *Position) KingSquare(c Color) Square {
	bb := pos.pieceBB[MakePiece(c, King)]
	if bb == 0 {
		panic("board: position has no king for " + c.String())
	}
	return Square(LsbIndex(bb))
}

// addPiece places p on sq, updating the piece bitset and both occupancy
// sets. sq must currently be empty.
func (pos *Position) addPiece(sq Square, p Piece) {
	bit := Bitboard(1) << uint(sq)
	pos.pieceBB[p] |= bit
	pos.occ[p.Color()] |= bit
	pos.occ[occBoth] |= bit
}

// removePiece clears sq, which must hold p.
func (pos *Position) removePiece(sq Square, p Piece) {
	bit := ^(Bitboard(1) << uint(sq))
	pos.pieceBB[p] &= bit
	pos.occ[p.Color()] &= bit
	pos.occ[occBoth] &= bit
}

// movePieceBit relocates p from `from` to `to` without touching any other
// bitset (neither square may hold a different piece than expected).
func (pos *Position) movePieceBit(from, to Square, p Piece) {
	mask := (Bitboard(1) << uint(from)) | (Bitboard(1) << uint(to))
	pos.pieceBB[p] ^= mask
	pos.occ[p.Color()] ^= mask
	pos.occ[occBoth] ^= mask
}

// IsSquareAttacked reports whether any piece of bySide attacks sq. It is
// expressed as the disjunction from §4.7, using attacker symmetry: X
// attacks Y iff Y attacks X from Y. The disjunction order (pawns, knights,
// bishops+queens, rooks+queens, kings) follows the reference engine's
// isSquareAttacked exactly.
func (pos *Position) IsSquareAttacked(sq Square, bySide Color) bool {
	if PawnAttacks(bySide.Other(), sq)&pos.pieceBB[MakePiece(bySide, Pawn)] != 0 {
		return true
	}
	if KnightAttacks(sq)&pos.pieceBB[MakePiece(bySide, Knight)] != 0 {
		return true
	}
	occ := pos.occ[occBoth]
	bishopsQueens := pos.pieceBB[MakePiece(bySide, Bishop)] | pos.pieceBB[MakePiece(bySide, Queen)]
	if GetBishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := pos.pieceBB[MakePiece(bySide, Rook)] | pos.pieceBB[MakePiece(bySide, Queen)]
	if GetRookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	if KingAttacks(sq)&pos.pieceBB[MakePiece(bySide, King)] != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (pos *Position) InCheck(c Color) bool {
	return pos.IsSquareAttacked(pos.KingSquare(c), c.Other())
}

// Hash computes a Zobrist fingerprint of the position (§9's "position
// fingerprint" hook). The core does not implement a transposition table;
// this is exposed purely so an external driver can key one.
func (pos *Position) Hash() uint64 {
	var key uint64
	for p := WP; p <= BK; p++ {
		bb := pos.pieceBB[p]
		for bb != 0 {
			sq := PopLsb(&bb)
			key ^= zobristPiece[p][sq]
		}
	}
	if pos.Side == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[pos.Castle]
	if pos.EP != NoSq {
		key ^= zobristEP[pos.EP.File()]
	}
	return key
}

// Equal reports whether pos and other hold bit-exactly the same pieces,
// occupancies, side to move, en-passant square, castling rights, halfmove
// clock and fullmove number (§8). Ply and the undo stack are not compared.
func (pos *Position) Equal(other *Position) bool {
	if pos.Side != other.Side || pos.EP != other.EP || pos.Castle != other.Castle ||
		pos.HalfmoveClock != other.HalfmoveClock || pos.FullmoveNumber != other.FullmoveNumber {
		return false
	}
	if pos.occ != other.occ {
		return false
	}
	return pos.pieceBB == other.pieceBB
}
