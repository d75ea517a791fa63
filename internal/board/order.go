package board

import "sort"

// stableSortMoves orders moves for alpha-beta search: captures (ranked
// by MVV/LVA) before castles before promotions before everything else,
// with piece-type ordering and pawn advancement breaking remaining
// ties. Sorting is stable so generation order survives among otherwise
// equal moves.
// StableSortMoves is the exported form of stableSortMoves, used by
// callers that want alpha-beta move ordering without running a search.
func StableSortMoves(moves []Move) { stableSortMoves(moves) }

func stableSortMoves(moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moveBefore(moves[i], moves[j])
	})
}

// moveBefore implements the §4.5 comparator: a before b.
func moveBefore(a, b Move) bool {
	aCap, bCap := a.Captured != 0 || a.Is(EP_CAPTURE), b.Captured != 0 || b.Is(EP_CAPTURE)
	if aCap != bCap {
		return aCap
	}
	if aCap && bCap {
		aVictim, bVictim := a.Captured, b.Captured
		if a.Is(EP_CAPTURE) {
			aVictim = PAWN
		}
		if b.Is(EP_CAPTURE) {
			bVictim = PAWN
		}
		rank := (PIECE_CAPTURES[bVictim]-PIECE_CAPTURES[aVictim])*10 +
			PIECE_SCORES[a.Piece] - PIECE_SCORES[b.Piece]
		if rank != 0 {
			return rank < 0
		}
	}

	aCastle, bCastle := a.Is(CASTLE_MASK), b.Is(CASTLE_MASK)
	if aCastle != bCastle {
		return aCastle
	}

	aPromo, bPromo := a.Promote != 0, b.Promote != 0
	if aPromo != bPromo {
		return aPromo
	}
	if aPromo && bPromo && a.Promote != b.Promote {
		return a.Promote > b.Promote
	}

	aOrder, bOrder := PIECE_ORDERS[PieceType(a.Piece)], PIECE_ORDERS[PieceType(b.Piece)]
	if aOrder != bOrder {
		return aOrder < bOrder
	}

	if PieceType(a.Piece) == PAWN {
		if PieceColor(a.Piece) == WHITE {
			return Rank(a.To) < Rank(b.To)
		}
		return Rank(a.To) > Rank(b.To)
	}

	return false
}
