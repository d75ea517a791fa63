package board

// Piece type nibbles. 0 means empty; a piece nibble is type | (color<<3).
const (
	NoType int = 0
	PAWN   int = 1
	KNIGHT int = 2
	BISHOP int = 3
	ROOK   int = 4
	QUEEN  int = 5
	KING   int = 6
)

// Colors.
const (
	WHITE int = 0
	BLACK int = 1
)

// PieceNames is the inverse of the nibble encoding: index by the nibble
// value (0 = empty, 1-6 = white P..K, 9-14 = black p..k) to get its FEN
// letter.
const PieceNames = " PNBRQK  pnbrqk"

// MakePiece builds a nibble from a type and color. Passing NoType yields 0
// (empty) regardless of color.
func MakePiece(typ, color int) int {
	if typ == NoType {
		return 0
	}
	return typ | (color << 3)
}

// PieceType extracts the type (1-6) from a nibble; 0 for empty squares.
func PieceType(piece int) int { return piece & 0x07 }

// PieceColor extracts the color bit from a nibble. Undefined for empty
// squares; callers must check PieceType first.
func PieceColor(piece int) int { return piece >> 3 }

// pieceChar returns the FEN letter for the given type and color.
func pieceChar(typ, color int) byte {
	return PieceNames[MakePiece(typ, color)]
}

// PieceFromChar is the exported form of pieceFromChar.
func PieceFromChar(c byte) (int, bool) { return pieceFromChar(c) }

// pieceFromChar maps a FEN letter to a (nibble, ok) pair.
func pieceFromChar(c byte) (int, bool) {
	for i := 1; i < len(PieceNames); i++ {
		if i == 7 || i == 8 {
			continue
		}
		if PieceNames[i] == c {
			return i, true
		}
	}
	return 0, false
}

// PIECE_SCORES is the material value of each piece nibble, indexed by
// the full 0-15 nibble range so captured/mover lookups never branch on
// color.
var PIECE_SCORES = [16]int{
	0, 100, 300, 300, 500, 900, 12800, 0,
	0, 100, 300, 300, 500, 900, 12800,
}

// PROMOTE_SCORES is the material bonus added on promotion, indexed by
// the promoted type (the pawn's own 100 stays on the board as part of
// materials until overwritten, so this is value-minus-pawn for N, B, R
// and Q). The KING entry is not value-minus-pawn; no move promotes to a
// king, so it is never read.
var PROMOTE_SCORES = [7]int{0, 0, 200, 200, 400, 800, 11800}

// PIECE_CAPTURES ranks how valuable it is to capture a piece of this
// type, used by the move-ordering MVV/LVA comparator. These sit on a
// ~20000 scale, not a small 0-9 scale, so the *10 victim term in
// moveBefore's rank outweighs the PIECE_SCORES attacker term for every
// attacker but the king, whose 12800 can outweigh a victim gap.
var PIECE_CAPTURES = [7]int{0, 20100, 20300, 20300, 20500, 20900, 32800}

// PIECE_ORDERS ranks piece types for move ordering when no capture,
// castle, or promotion distinguishes two moves: knights/bishops first,
// then rooks, queens, pawns, and finally the king. Indexed by type
// (NoType, Pawn, Knight, Bishop, Rook, Queen, King).
var PIECE_ORDERS = [7]int{0, 4, 1, 1, 2, 3, 5}

// MOBILITY_SCORES weights each piece type's mobility count in the
// evaluator. Indexed by type (NoType, Pawn, Knight, Bishop, Rook,
// Queen, King).
var MOBILITY_SCORES = [7]float64{0, 1.0, 6.0, 3.0, 3.0, 0.3, 0}
