// Package board implements a 0x88 chess board: piece placement, position
// state, the attack oracle, pseudo-legal and legal move generation,
// make/undo, and the FEN/SAN/UCI notation layers.
package board

import "fmt"

// Square is a 0x88 board index: bits 0-3 hold the file (0=a..7=h), bits
// 4-6 hold the rank (0=8th rank..7=1st rank). Bit 3 and bit 7 together
// form the 0x88 off-board marker, so sq&0x88 != 0 iff sq is off-board.
type Square int

// EMPTY marks an absent square (no king, no ep target, no castling rook).
const EMPTY Square = -1

// Board bounds: valid squares run 0..0x77 with an 8-square gap per rank.
const (
	boardMin = 0x00
	boardMax = 0x77
)

// File returns the file of sq, 0 (a-file) through 7 (h-file).
func File(sq Square) int { return int(sq) & 0x0f }

// Rank returns the rank of sq, 0 (8th rank) through 7 (1st rank).
func Rank(sq Square) int { return int(sq) >> 4 }

// onBoard reports whether sq lies on the playable 8x8 board.
func onBoard(sq Square) bool {
	return sq >= 0 && int(sq)&0x88 == 0
}

// squareToAn renders sq in algebraic notation ("e4"); check appends "+"
// as a convenience for callers building decorated SAN strings.
func squareToAn(sq Square, check bool) string {
	if !onBoard(sq) {
		return "-"
	}
	s := fmt.Sprintf("%c%c", 'a'+File(sq), '8'-Rank(sq))
	if check {
		s += "+"
	}
	return s
}

// SquareToAn renders sq in algebraic notation ("e4"); check appends "+".
func SquareToAn(sq Square, check bool) string { return squareToAn(sq, check) }

// AnToSquare parses algebraic notation ("e4") into a Square, or EMPTY
// if the string is not a well-formed square.
func AnToSquare(an string) Square { return anToSquare(an) }

// anToSquare parses algebraic notation ("e4") into a Square, or EMPTY if
// the string is not a well-formed square.
func anToSquare(an string) Square {
	if len(an) != 2 {
		return EMPTY
	}
	file := int(an[0] - 'a')
	rankDigit := int(an[1] - '0')
	if file < 0 || file > 7 || rankDigit < 1 || rankDigit > 8 {
		return EMPTY
	}
	rank := 8 - rankDigit
	return Square(rank<<4 | file)
}
