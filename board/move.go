package board

// Move packs a chess move into the low 24 bits of a uint32, using the
// on-the-wire layout from §6:
//
//	bits 0-5    source square
//	bits 6-11   target square
//	bits 12-15  piece
//	bits 16-19  promotion piece (0 if none; NoPiece is biased to fit in 4 bits)
//	bit 20      capture flag
//	bit 21      double-push flag
//	bit 22      en-passant flag
//	bit 23      castle flag
//
// Encoders are accessors only; there is no validation — callers guarantee
// valid field widths, matching the reference engine's encodeMove macro.
type Move uint32

const (
	moveSourceShift = 0
	moveTargetShift = 6
	movePieceShift  = 12
	movePromoShift  = 16
	moveCaptureBit  = 20
	moveDoubleBit   = 21
	moveEpBit       = 22
	moveCastleBit   = 23

	move6BitMask = 0x3F
	move4BitMask = 0xF
)

// promoCode/pieceFromPromoCode bias Piece (which includes NoPiece == -1)
// into the 4-bit field: NoPiece encodes as 0, and real pieces encode as
// Piece+1.
func promoCode(p Piece) uint32 {
	if p == NoPiece {
		return 0
	}
	return uint32(p) + 1
}

func pieceFromPromoCode(code uint32) Piece {
	if code == 0 {
		return NoPiece
	}
	return Piece(code - 1)
}

// NewMove constructs a packed Move from its components.
func NewMove(from, to Square, piece, promo Piece, capture, doublePush, enPassant, castle bool) Move {
	m := uint32(from)&move6BitMask |
		(uint32(to)&move6BitMask)<<moveTargetShift |
		(uint32(piece)&move4BitMask)<<movePieceShift |
		promoCode(promo)<<movePromoShift
	if capture {
		m |= 1 << moveCaptureBit
	}
	if doublePush {
		m |= 1 << moveDoubleBit
	}
	if enPassant {
		m |= 1 << moveEpBit
	}
	if castle {
		m |= 1 << moveCastleBit
	}
	return Move(m)
}

func (m Move) From() Square       { return Square((uint32(m) >> moveSourceShift) & move6BitMask) }
func (m Move) To() Square         { return Square((uint32(m) >> moveTargetShift) & move6BitMask) }
func (m Move) Piece() Piece       { return Piece((uint32(m) >> movePieceShift) & move4BitMask) }
func (m Move) Promotion() Piece   { return pieceFromPromoCode((uint32(m) >> movePromoShift) & move4BitMask) }
func (m Move) IsCapture() bool    { return m&(1<<moveCaptureBit) != 0 }
func (m Move) IsDoublePush() bool { return m&(1<<moveDoubleBit) != 0 }
func (m Move) IsEnPassant() bool  { return m&(1<<moveEpBit) != 0 }
func (m Move) IsCastle() bool     { return m&(1<<moveCastleBit) != 0 }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != NoPiece }

// IsQuiet reports whether m is neither a capture nor a promotion (the
// quiet moves eligible for killer/history ordering).
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// String renders m in UCI notation: <from><to>[<promo>].
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if promo := m.Promotion(); promo != NoPiece {
		if letter, ok := promotionLetters[promo.Type()]; ok {
			s += string(letter)
		}
	}
	return s
}
