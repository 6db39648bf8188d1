package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Position from Forsyth-Edwards notation. It validates
// field count and piece/rank consistency but not full legality (no check on
// king counts; Position.KingSquare panics on first use if a side has no
// king, and a second king of the same color is not detected).
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: FEN %q has %d fields, want at least 4", fen, len(fields))
	}

	pos := NewPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: FEN %q has %d ranks, want 8", fen, len(ranks))
	}
	for r, rankStr := range ranks {
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				p := PieceFromLetter(byte(ch))
				if p == NoPiece {
					return nil, fmt.Errorf("board: FEN %q has invalid piece char %q", fen, ch)
				}
				if file > 7 {
					return nil, fmt.Errorf("board: FEN %q rank %d overflows the board", fen, r+1)
				}
				sq := Square(r*8 + file)
				pos.addPiece(sq, p)
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("board: FEN %q rank %d sums to %d files, want 8", fen, r+1, file)
		}
	}

	switch fields[1] {
	case "w":
		pos.Side = White
	case "b":
		pos.Side = Black
	default:
		return nil, fmt.Errorf("board: FEN %q has invalid side %q", fen, fields[1])
	}

	pos.Castle = 0
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				pos.Castle |= CastleWK
			case 'Q':
				pos.Castle |= CastleWQ
			case 'k':
				pos.Castle |= CastleBK
			case 'q':
				pos.Castle |= CastleBQ
			default:
				return nil, fmt.Errorf("board: FEN %q has invalid castling char %q", fen, ch)
			}
		}
	}

	if fields[3] == "-" {
		pos.EP = NoSq
	} else {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return nil, fmt.Errorf("board: FEN %q has invalid en-passant square %q", fen, fields[3])
		}
		pos.EP = sq
	}

	pos.HalfmoveClock = 0
	pos.FullmoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("board: FEN %q has invalid halfmove clock: %w", fen, err)
		}
		pos.HalfmoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("board: FEN %q has invalid fullmove number: %w", fen, err)
		}
		pos.FullmoveNumber = n
	}

	return pos, nil
}

// ToFEN renders pos back into Forsyth-Edwards notation.
func (pos *Position) ToFEN() string {
	var sb strings.Builder

	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := Square(r*8 + f)
			p := pos.PieceAt(sq)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.Side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if pos.Castle == 0 {
		sb.WriteByte('-')
	} else {
		if pos.Castle&CastleWK != 0 {
			sb.WriteByte('K')
		}
		if pos.Castle&CastleWQ != 0 {
			sb.WriteByte('Q')
		}
		if pos.Castle&CastleBK != 0 {
			sb.WriteByte('k')
		}
		if pos.Castle&CastleBQ != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.EP.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return sb.String()
}
