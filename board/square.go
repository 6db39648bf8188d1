package board

// Square is a board position in 0..63, with square 0 = A8 and square 63 =
// H1 (rank 0 of the internal layout is rank 8 on the board; see the
// reference engine's pretty-printer, which prints "8-rank" as it walks
// rank := 0..7). NoSq is the sentinel for "no en-passant target".
type Square int

const NoSq Square = -1

// File returns the file (0=a .. 7=h) of sq.
func (sq Square) File() int { return int(sq) % 8 }

// Rank8Index returns the internal rank index (0 = rank 8 .. 7 = rank 1).
func (sq Square) Rank8Index() int { return int(sq) / 8 }

// Rank returns the conventional rank number (1..8) of sq.
func (sq Square) Rank() int { return 8 - sq.Rank8Index() }

var squareNames = [64]string{
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
}

// String returns the algebraic coordinate of sq (e.g. "e4"), or "-" for NoSq.
func (sq Square) String() string {
	if sq == NoSq || sq < 0 || sq > 63 {
		return "-"
	}
	return squareNames[sq]
}

// ParseSquare converts an algebraic coordinate such as "e4" into a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSq, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSq, false
	}
	rankIdx := 8 - int(rank-'0')
	return Square(rankIdx*8 + int(file-'a')), true
}

// File masks, derived from the A-file mask shifted across the board.
var (
	FileAMask Bitboard = 0x0101010101010101
	FileBMask          = FileAMask << 1
	FileCMask          = FileAMask << 2
	FileDMask          = FileAMask << 3
	FileEMask          = FileAMask << 4
	FileFMask          = FileAMask << 5
	FileGMask          = FileAMask << 6
	FileHMask          = FileAMask << 7

	NotFileAMask  = ^FileAMask
	NotFileHMask  = ^FileHMask
	NotFileABMask = ^(FileAMask | FileBMask)
	NotFileGHMask = ^(FileGMask | FileHMask)
)

// Rank masks, indexed by the internal rank index (0 = rank 8 .. 7 = rank 1).
var RankMasks = [8]Bitboard{
	0xFF << (8 * 0), // rank 8
	0xFF << (8 * 1), // rank 7
	0xFF << (8 * 2), // rank 6
	0xFF << (8 * 3), // rank 5
	0xFF << (8 * 4), // rank 4
	0xFF << (8 * 5), // rank 3
	0xFF << (8 * 6), // rank 2
	0xFF << (8 * 7), // rank 1
}

var (
	Rank8Mask = RankMasks[0]
	Rank7Mask = RankMasks[1]
	Rank2Mask = RankMasks[6]
	Rank1Mask = RankMasks[7]
)

var FileMasks = [8]Bitboard{FileAMask, FileBMask, FileCMask, FileDMask, FileEMask, FileFMask, FileGMask, FileHMask}

// Named squares for the home ranks, used by castling logic.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A2 Square = 48 + iota
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)
