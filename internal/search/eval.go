// Package search implements move ordering, evaluation, and the
// negamax/alpha-beta search on top of the board package.
package search

import "github.com/aldekein/chesscore/internal/board"

// Evaluate scores pos from the perspective of the side that just
// moved, not the side to move: it is called from inside searchMoves
// immediately after a candidate move has been applied, so pos.Turn()
// names the opponent and the mover is its complement. eval_mode is a
// bitmask, not an exclusive enum: bit 0 (present in EvalMat, EvalHCE,
// EvalQui, EvalNN) adds the material term, bit 1 (present in EvalMob,
// EvalHCE, EvalQui, EvalNN) adds the mobility term, so EvalMob alone
// omits material entirely, matching the mode's literal bit pattern.
// Bits 4 and 8 (EvalQui's and EvalNN's remaining bits) mark quiescence
// and neural-net evaluation as reserved and contribute nothing, since
// this evaluator implements the material and mobility terms only.
func Evaluate(pos *board.Position) int {
	mode := pos.EvalMode()
	them := pos.Turn()
	us := 1 - them

	score := 0
	if mode&1 != 0 {
		score += pos.Material(us) - pos.Material(them)
	}
	if mode&2 != 0 {
		score += mobilityScore(pos, us) - mobilityScore(pos, them)
	}
	return score
}

// mobilityScore sums MOBILITY_SCORES across every piece type for color,
// using the mobility counts CreateMoves most recently refreshed.
func mobilityScore(pos *board.Position, color int) int {
	mobilities := pos.Mobilities()
	total := 0.0
	for typ := board.PAWN; typ <= board.KING; typ++ {
		total += board.MOBILITY_SCORES[typ] * float64(mobilities[board.MakePiece(typ, color)])
	}
	return int(total)
}
