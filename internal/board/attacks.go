package board

// ATTACK_BITS is the per-type mask used to test the attack table,
// indexed by piece type (NoType, Pawn, Knight, Bishop, Rook, Queen,
// King).
var ATTACK_BITS = [7]int{0, 1, 2, 4, 8, 16, 32}

// attackCenter is the zero-offset index into the 15x15-equivalent
// attack/ray tables: table[diff+attackCenter] describes the line from a
// square to a target attackCenter away.
const attackCenter = 119
const attackTableSize = 2*attackCenter + 1

// attackTable[diff+attackCenter] is the OR of ATTACK_BITS for every
// piece type that could attack across that square difference, ignoring
// blockers. rayTable[diff+attackCenter] is the signed single-step
// offset to walk from the attacker toward the target along that line,
// or 0 if the offset isn't a line a slider can use.
var (
	attackTable [attackTableSize]int
	rayTable    [attackTableSize]int
)

func init() {
	for _, d := range knightOffsets {
		attackTable[d+attackCenter] |= ATTACK_BITS[KNIGHT]
	}
	for _, d := range kingOffsets {
		attackTable[d+attackCenter] |= ATTACK_BITS[KING]
	}
	for _, d := range []int{17, 15, -17, -15} {
		attackTable[d+attackCenter] |= ATTACK_BITS[PAWN]
	}
	for _, dir := range bishopDirs {
		for k := 1; k <= 7; k++ {
			d := dir * k
			attackTable[d+attackCenter] |= ATTACK_BITS[BISHOP] | ATTACK_BITS[QUEEN]
			rayTable[d+attackCenter] = -dir
		}
	}
	for _, dir := range rookDirs {
		for k := 1; k <= 7; k++ {
			d := dir * k
			attackTable[d+attackCenter] |= ATTACK_BITS[ROOK] | ATTACK_BITS[QUEEN]
			rayTable[d+attackCenter] = -dir
		}
	}
}

// Attacked reports whether any piece of color attacks target. It scans
// every occupied square of color, consults the precomputed tables to
// rule out non-attackers cheaply, and for sliding pieces walks the ray
// toward target to check for blockers.
func (p *Position) Attacked(color int, target Square) bool {
	if target == EMPTY {
		return false
	}
	for i := 0; i <= boardMax; i++ {
		if i&0x88 != 0 {
			i += 7
			continue
		}
		piece := p.board[i]
		if piece == 0 || PieceColor(piece) != color {
			continue
		}
		diff := i - int(target)
		index := diff + attackCenter
		typ := PieceType(piece)
		if attackTable[index]&ATTACK_BITS[typ] == 0 {
			continue
		}
		switch typ {
		case PAWN:
			if color == WHITE {
				if diff > 0 {
					return true
				}
			} else if diff < 0 {
				return true
			}
		case KNIGHT, KING:
			return true
		default:
			offset := rayTable[index]
			blocked := false
			j := i + offset
			for j != int(target) {
				if p.board[j] != 0 {
					blocked = true
					break
				}
				j += offset
			}
			if !blocked {
				return true
			}
		}
	}
	return false
}

// Checked reports whether color's king is currently attacked. A color
// with no king on the board is never in check.
func (p *Position) Checked(color int) bool {
	k := p.kings[color]
	if k == EMPTY {
		return false
	}
	return p.Attacked(1-color, k)
}
